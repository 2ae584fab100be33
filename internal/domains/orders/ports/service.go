package ports

import (
	"context"
	"errors"

	"github.com/Apurer/huerto-store/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// StatusSentinel is the status filter value meaning "every status".
const StatusSentinel = "todos"

// OrderQuery carries the active order filters.
type OrderQuery struct {
	Text   string
	Status string
}

// Service exposes the read-only order history.
type Service interface {
	List(ctx context.Context) ([]domain.Order, error)
	Search(ctx context.Context, query OrderQuery) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
