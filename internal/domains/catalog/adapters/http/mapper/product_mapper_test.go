package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
)

func TestFromDomainProduct_ResolvesLookupIDs(t *testing.T) {
	categories := []domain.Lookup{{ID: 3, Name: "Orgánicos"}}
	countries := []domain.Lookup{{ID: 2, Name: "Perú"}}
	p := domain.Product{ID: 8, Name: "Quinoa Orgánica", Category: "Orgánicos", Price: 12990, Stock: 5, Origin: "Perú"}

	out := FromDomainProduct(p, categories, countries)
	require.Equal(t, &Category{ID: 3, Name: "Orgánicos"}, out.Category)
	require.Equal(t, &Country{ID: 2, Name: "Perú"}, out.Origin)
	require.True(t, out.LowStock)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.JSONEq(t, `{"idProducto":8,"nombreProducto":"Quinoa Orgánica","categoria":{"idCategoria":3,"nombreCategoria":"Orgánicos"},"precioProducto":12990,"stockProducto":5,"paisOrigen":{"idPais":2,"nombre":"Perú"},"stockBajo":true}`, string(raw))
}

func TestFromDomainProducts_EmptyIsNotNil(t *testing.T) {
	require.NotNil(t, FromDomainProducts(nil, nil, nil))
}
