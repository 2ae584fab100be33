package remote

import (
	"strings"

	"github.com/Apurer/huerto-store/internal/clients/http/catalogapi"
	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

// ToPayload converts a local product into the catalog API shape, referencing its category
// and country by the ids in refs.
func ToPayload(p domain.Product, refs domain.ProductRefs) catalogapi.Producto {
	payload := catalogapi.Producto{
		IdProducto:          p.ID,
		NombreProducto:      p.Name,
		DescripcionProducto: p.Description,
		PrecioProducto:      p.Price,
		StockProducto:       p.Stock,
		ImagenUrl:           p.Image,
	}
	if p.Category != "" {
		payload.Categoria = &catalogapi.Categoria{IdCategoria: refs.CategoryID, NombreCategoria: p.Category}
	}
	if p.Origin != "" {
		payload.PaisOrigen = &catalogapi.Pais{IdPais: refs.CountryID, Nombre: p.Origin}
	}
	return payload
}

// FromPayload builds a local product from the catalog API shape. Missing nested objects
// leave the matching fields empty.
func FromPayload(payload catalogapi.Producto) domain.Product {
	p := domain.Product{
		ID:          payload.IdProducto,
		Name:        strings.TrimSpace(payload.NombreProducto),
		Description: strings.TrimSpace(payload.DescripcionProducto),
		Price:       payload.PrecioProducto,
		Stock:       payload.StockProducto,
		Image:       strings.TrimSpace(payload.ImagenUrl),
	}
	if payload.Categoria != nil {
		p.Category = strings.TrimSpace(payload.Categoria.NombreCategoria)
	}
	if payload.PaisOrigen != nil {
		p.Origin = strings.TrimSpace(payload.PaisOrigen.Nombre)
	}
	return p
}

func categoryLookup(c catalogapi.Categoria) domain.Lookup {
	return domain.Lookup{ID: c.IdCategoria, Name: c.NombreCategoria}
}

func countryLookup(c catalogapi.Pais) domain.Lookup {
	return domain.Lookup{ID: c.IdPais, Name: c.Nombre}
}
