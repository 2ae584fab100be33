package ports

import (
	"context"

	"github.com/Apurer/huerto-store/internal/domains/cart/domain"
	catalog "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

// ProductCatalog resolves the product snapshot added to the cart.
type ProductCatalog interface {
	GetByID(ctx context.Context, id int64) (*catalog.Product, error)
}

// Service exposes the shopping cart.
type Service interface {
	Get(ctx context.Context) (domain.Cart, error)
	AddToCart(ctx context.Context, productID, quantity int64) (domain.Cart, error)
	Clear(ctx context.Context) error
	// Subscribe delivers the latest cart summary after each change until cancel is called.
	Subscribe() (<-chan domain.Changed, func())
}
