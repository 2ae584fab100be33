package mapper

import (
	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

// Category is the HTTP representation of a product category.
type Category struct {
	ID   int64  `json:"idCategoria"`
	Name string `json:"nombreCategoria"`
}

// Country is the HTTP representation of a country of origin.
type Country struct {
	ID   int64  `json:"idPais"`
	Name string `json:"nombre"`
}

// Product is the storefront representation, matching the external catalog API shape.
type Product struct {
	ID          int64     `json:"idProducto"`
	Name        string    `json:"nombreProducto"`
	Category    *Category `json:"categoria,omitempty"`
	Description string    `json:"descripcionProducto,omitempty"`
	Price       int64     `json:"precioProducto"`
	Stock       int64     `json:"stockProducto"`
	Origin      *Country  `json:"paisOrigen,omitempty"`
	ImageURL    string    `json:"imagenUrl,omitempty"`
	LowStock    bool      `json:"stockBajo"`
}

// FromDomainProduct maps a domain product into its HTTP representation. Lookup ids are
// resolved by name when available.
func FromDomainProduct(p domain.Product, categories, countries []domain.Lookup) Product {
	out := Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.Image,
		LowStock:    p.LowStock(),
	}
	if p.Category != "" {
		out.Category = &Category{ID: domain.LookupID(categories, p.Category), Name: p.Category}
	}
	if p.Origin != "" {
		out.Origin = &Country{ID: domain.LookupID(countries, p.Origin), Name: p.Origin}
	}
	return out
}

// FromDomainProducts maps a slice, never returning nil.
func FromDomainProducts(products []domain.Product, categories, countries []domain.Lookup) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromDomainProduct(p, categories, countries))
	}
	return out
}

// FromLookups maps reference entries to categories.
func FromLookups(lookups []domain.Lookup) []Category {
	out := make([]Category, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, Category{ID: l.ID, Name: l.Name})
	}
	return out
}

// FromCountryLookups maps reference entries to countries.
func FromCountryLookups(lookups []domain.Lookup) []Country {
	out := make([]Country, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, Country{ID: l.ID, Name: l.Name})
	}
	return out
}
