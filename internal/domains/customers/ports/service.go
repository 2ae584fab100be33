package ports

import (
	"context"
	"errors"

	"github.com/Apurer/huerto-store/internal/domains/customers/domain"
	"github.com/Apurer/huerto-store/internal/shared/editor"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

var ErrNotFound = errors.New("customer not found")

// CountrySentinel is the country filter value meaning "every country".
const CountrySentinel = "todos"

// CustomerQuery carries the active customer filters.
type CustomerQuery struct {
	Text     string
	Country  string
	Frequent filter.TriState
}

// CommitResult is the outcome of submitting the customer editor.
type CommitResult struct {
	Customer *domain.Customer
	Created  bool
	Applied  bool
	State    editor.State
}

// Service exposes customer use cases to adapters. Customers are never deleted.
type Service interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, query CustomerQuery) ([]domain.Customer, error)
	GetByRUT(ctx context.Context, rut string) (*domain.Customer, error)
	Countries(ctx context.Context) ([]string, error)

	EditorState(ctx context.Context, session string) (editor.State, error)
	SelectForEdit(ctx context.Context, session, rut string) (editor.State, error)
	UpdateDraft(ctx context.Context, session string, fields editor.Form) (editor.State, error)
	SubmitDraft(ctx context.Context, session string) (*CommitResult, error)
	CancelEdit(ctx context.Context, session string) (editor.State, error)
}
