package ports

import (
	"context"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

// RemoteCatalog is the outbound port to the external catalog REST API.
type RemoteCatalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Lookup, error)
	ListCountries(ctx context.Context) ([]domain.Lookup, error)
	CreateProduct(ctx context.Context, product domain.Product, refs domain.ProductRefs) error
	UpdateProduct(ctx context.Context, product domain.Product, refs domain.ProductRefs) error
	DeleteProduct(ctx context.Context, id int64) error
}
