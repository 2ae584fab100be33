package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartports "github.com/Apurer/huerto-store/internal/domains/cart/ports"
	catalogmapper "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

// featuredLimit caps the products shown on the home page.
const featuredLimit = 6

// LookupSource provides the reference lists fetched from the catalog API.
type LookupSource interface {
	Categories() []catalogdomain.Lookup
	Countries() []catalogdomain.Lookup
}

// StorefrontAPI serves the public catalog.
type StorefrontAPI struct {
	catalog catalogports.Service
	cart    cartports.Service
	lookups LookupSource
}

func NewStorefrontAPI(catalog catalogports.Service, cart cartports.Service, lookups LookupSource) StorefrontAPI {
	return StorefrontAPI{catalog: catalog, cart: cart, lookups: lookups}
}

// HomeView is the storefront landing payload.
type HomeView struct {
	Featured   []catalogmapper.Product `json:"destacados"`
	Categories []string                `json:"categorias"`
	CartCount  int64                   `json:"carrito"`
}

// Get /api/home
// Featured products, categories and the cart badge count
func (api *StorefrontAPI) Home(c *gin.Context) {
	ctx := c.Request.Context()
	products, err := api.catalog.List(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	featured := filter.Apply[catalogdomain.Product](products, inStock)
	if len(featured) > featuredLimit {
		featured = featured[:featuredLimit]
	}
	categories, err := api.catalog.Categories(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	cart, err := api.cart.Get(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, HomeView{
		Featured:   api.toHTTP(featured),
		Categories: categories,
		CartCount:  cart.Units(),
	})
}

// Get /api/productos
// Lists the catalog, optionally filtered by text and category
func (api *StorefrontAPI) ListProducts(c *gin.Context) {
	query := catalogports.ProductQuery{Text: c.Query("q"), Category: c.Query("categoria")}
	products, err := api.catalog.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.toHTTP(products))
}

// Get /api/productos/:idProducto
// Find product by ID
func (api *StorefrontAPI) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "idProducto")
	if !ok {
		return
	}
	product, err := api.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(*product, api.categories(), api.countries()))
}

func (api *StorefrontAPI) toHTTP(products []catalogdomain.Product) []catalogmapper.Product {
	return catalogmapper.FromDomainProducts(products, api.categories(), api.countries())
}

func (api *StorefrontAPI) categories() []catalogdomain.Lookup {
	if api.lookups == nil {
		return nil
	}
	return api.lookups.Categories()
}

func (api *StorefrontAPI) countries() []catalogdomain.Lookup {
	if api.lookups == nil {
		return nil
	}
	return api.lookups.Countries()
}

func inStock(p catalogdomain.Product) bool { return p.Stock > 0 }

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}
