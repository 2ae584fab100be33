// Package remote adapts the catalog API client to the catalog ports.
package remote

import (
	"context"
	"errors"

	"github.com/Apurer/huerto-store/internal/clients/http/catalogapi"
	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/domains/catalog/ports"
)

// Catalog implements ports.RemoteCatalog over HTTP.
type Catalog struct {
	client *catalogapi.Client
}

var _ ports.RemoteCatalog = (*Catalog)(nil)

func NewCatalog(client *catalogapi.Client) *Catalog {
	return &Catalog{client: client}
}

func (c *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}
	payloads, err := c.client.ListProductos(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, FromPayload(payload))
	}
	return products, nil
}

func (c *Catalog) ListCategories(ctx context.Context) ([]domain.Lookup, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}
	payloads, err := c.client.ListCategorias(ctx)
	if err != nil {
		return nil, err
	}
	lookups := make([]domain.Lookup, 0, len(payloads))
	for _, payload := range payloads {
		lookups = append(lookups, categoryLookup(payload))
	}
	return lookups, nil
}

func (c *Catalog) ListCountries(ctx context.Context) ([]domain.Lookup, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}
	payloads, err := c.client.ListPaises(ctx)
	if err != nil {
		return nil, err
	}
	lookups := make([]domain.Lookup, 0, len(payloads))
	for _, payload := range payloads {
		lookups = append(lookups, countryLookup(payload))
	}
	return lookups, nil
}

func (c *Catalog) CreateProduct(ctx context.Context, product domain.Product, refs domain.ProductRefs) error {
	if err := c.ensureClient(); err != nil {
		return err
	}
	return c.client.CreateProducto(ctx, ToPayload(product, refs))
}

func (c *Catalog) UpdateProduct(ctx context.Context, product domain.Product, refs domain.ProductRefs) error {
	if err := c.ensureClient(); err != nil {
		return err
	}
	return c.client.UpdateProducto(ctx, product.ID, ToPayload(product, refs))
}

func (c *Catalog) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.ensureClient(); err != nil {
		return err
	}
	return c.client.DeleteProducto(ctx, id)
}

func (c *Catalog) ensureClient() error {
	if c == nil || c.client == nil {
		return errors.New("catalog API client not configured")
	}
	return nil
}
