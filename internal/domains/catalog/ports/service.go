package ports

import (
	"context"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/shared/editor"
)

// CommitResult is the outcome of submitting the product editor.
type CommitResult struct {
	Product *domain.Product
	Created bool
	Applied bool
	State   editor.State
}

// Service exposes catalog use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query ProductQuery) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)

	EditorState(ctx context.Context, session string) (editor.State, error)
	SelectForEdit(ctx context.Context, session string, id int64) (editor.State, error)
	UpdateDraft(ctx context.Context, session string, fields editor.Form) (editor.State, error)
	SubmitDraft(ctx context.Context, session string) (*CommitResult, error)
	CancelEdit(ctx context.Context, session string) (editor.State, error)
}
