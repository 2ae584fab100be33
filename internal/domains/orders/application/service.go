package application

import (
	"context"
	"slices"
	"strings"

	"github.com/Apurer/huerto-store/internal/domains/orders/domain"
	"github.com/Apurer/huerto-store/internal/domains/orders/ports"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

// Service serves the order history from the local store.
type Service struct {
	orders *localstore.Collection[domain.Order]
}

var _ ports.Service = (*Service)(nil)

func NewService(store localstore.Store) *Service {
	return &Service{orders: localstore.NewCollection(store, localstore.KeyOrders, domain.DefaultOrders)}
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.All(ctx)
}

// Search filters by status and by a substring of the reference or customer name.
func (s *Service) Search(ctx context.Context, query ports.OrderQuery) ([]domain.Order, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(orders,
		filter.Contains[domain.Order](query.Text, orderID, orderCustomer),
		filter.Exact[domain.Order](query.Status, ports.StatusSentinel, orderStatus),
	), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	idx := slices.IndexFunc(orders, func(o domain.Order) bool { return strings.EqualFold(o.ID, id) })
	if idx < 0 {
		return nil, ports.ErrNotFound
	}
	order := orders[idx]
	return &order, nil
}

func orderID(o domain.Order) (string, bool)       { return o.ID, o.ID != "" }
func orderCustomer(o domain.Order) (string, bool) { return o.Customer, o.Customer != "" }
func orderStatus(o domain.Order) (string, bool)   { return string(o.Status), o.Status != "" }
