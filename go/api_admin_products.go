package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/Apurer/huerto-store/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	"github.com/Apurer/huerto-store/internal/shared/filter"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

// AdminProductsAPI serves the product back-office.
type AdminProductsAPI struct {
	catalog   catalogports.Service
	lookups   LookupSource
	formatter *table.Formatter
}

func NewAdminProductsAPI(catalog catalogports.Service, lookups LookupSource, formatter *table.Formatter) AdminProductsAPI {
	if formatter == nil {
		formatter = table.NewFormatter(table.DefaultLocale)
	}
	return AdminProductsAPI{catalog: catalog, lookups: lookups, formatter: formatter}
}

// LookupsView lists the reference data used by the product form.
type LookupsView struct {
	Categories []catalogmapper.Category `json:"categorias"`
	Countries  []catalogmapper.Country  `json:"paises"`
}

// Get /admin/productos
// Renders the product table for the active filters
func (api *AdminProductsAPI) ListProducts(c *gin.Context) {
	query := catalogports.ProductQuery{
		Text:     c.Query("q"),
		Category: c.Query("categoria"),
		LowStock: filter.ParseTriState(c.Query("stockBajo")),
	}
	products, err := api.catalog.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogapp.ProductTable(products, api.formatter))
}

// Delete /admin/productos/:id
// Deletes a product
func (api *AdminProductsAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.catalog.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /admin/productos/editor
func (api *AdminProductsAPI) GetEditor(c *gin.Context) {
	state, err := api.catalog.EditorState(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Post /admin/productos/editor/select/:id
// Loads a product into the editor
func (api *AdminProductsAPI) SelectProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	state, err := api.catalog.SelectForEdit(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Patch /admin/productos/editor
// Writes field values into the draft
func (api *AdminProductsAPI) UpdateDraft(c *gin.Context) {
	fields, err := bindForm(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	state, err := api.catalog.UpdateDraft(c.Request.Context(), sessionFrom(c), fields)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Post /admin/productos/editor/submit
// Validates the draft and creates or updates the product
func (api *AdminProductsAPI) SubmitDraft(c *gin.Context) {
	result, err := api.catalog.SubmitDraft(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, EditorCommit[catalogdomain.Product]{
		Record:  result.Product,
		Created: result.Created,
		Applied: result.Applied,
		State:   result.State,
	})
}

// Post /admin/productos/editor/cancel
func (api *AdminProductsAPI) CancelEdit(c *gin.Context) {
	state, err := api.catalog.CancelEdit(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Get /admin/lookups
// Categories and countries fetched from the catalog API
func (api *AdminProductsAPI) Lookups(c *gin.Context) {
	view := LookupsView{
		Categories: []catalogmapper.Category{},
		Countries:  []catalogmapper.Country{},
	}
	if api.lookups != nil {
		view.Categories = catalogmapper.FromLookups(api.lookups.Categories())
		view.Countries = catalogmapper.FromCountryLookups(api.lookups.Countries())
	}
	c.JSON(http.StatusOK, view)
}
