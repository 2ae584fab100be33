package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Protected routes run behind the session middleware.
	Protected bool
}

// ApiHandleFunctions groups the handlers served by the router.
type ApiHandleFunctions struct {
	// Routes for the storefront.
	StorefrontAPI StorefrontAPI
	// Routes for the shopping cart.
	CartAPI CartAPI
	// Routes for the back-office session token.
	SessionAPI SessionAPI
	// Routes for the product back-office.
	AdminProductsAPI AdminProductsAPI
	// Routes for the customer back-office.
	AdminCustomersAPI AdminCustomersAPI
	// Routes for the order history.
	AdminOrdersAPI AdminOrdersAPI
	// RequireSession guards protected routes. Nil leaves them open.
	RequireSession gin.HandlerFunc
}

// NewRouter returns a new router. middleware is installed before any route is registered
// so every route runs it.
func NewRouter(handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.Use(middleware...)
	return NewRouterWithGinEngine(router, handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine. Middleware added to router
// afterwards does not reach these routes.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if route.Protected && handleFunctions.RequireSession != nil {
			handlers = append([]gin.HandlerFunc{handleFunctions.RequireSession}, handlers...)
		}
		router.Handle(route.Method, route.Pattern, handlers...)
	}
	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(h ApiHandleFunctions) []Route {
	return []Route{
		{"Home", http.MethodGet, "/api/home", h.StorefrontAPI.Home, false},
		{"ListProducts", http.MethodGet, "/api/productos", h.StorefrontAPI.ListProducts, false},
		{"GetProduct", http.MethodGet, "/api/productos/:idProducto", h.StorefrontAPI.GetProduct, false},

		{"GetCart", http.MethodGet, "/api/carrito", h.CartAPI.GetCart, false},
		{"AddToCart", http.MethodPost, "/api/carrito", h.CartAPI.AddToCart, false},
		{"ClearCart", http.MethodDelete, "/api/carrito", h.CartAPI.ClearCart, false},
		{"StreamCartEvents", http.MethodGet, "/api/carrito/events", h.CartAPI.StreamCartEvents, false},

		{"IssueSession", http.MethodPost, "/api/session", h.SessionAPI.IssueSession, false},
		{"RevokeSession", http.MethodDelete, "/api/session", h.SessionAPI.RevokeSession, true},

		{"AdminListProducts", http.MethodGet, "/admin/productos", h.AdminProductsAPI.ListProducts, true},
		{"AdminDeleteProduct", http.MethodDelete, "/admin/productos/:id", h.AdminProductsAPI.DeleteProduct, true},
		{"AdminProductEditor", http.MethodGet, "/admin/productos/editor", h.AdminProductsAPI.GetEditor, true},
		{"AdminSelectProduct", http.MethodPost, "/admin/productos/editor/select/:id", h.AdminProductsAPI.SelectProduct, true},
		{"AdminUpdateProductDraft", http.MethodPatch, "/admin/productos/editor", h.AdminProductsAPI.UpdateDraft, true},
		{"AdminSubmitProduct", http.MethodPost, "/admin/productos/editor/submit", h.AdminProductsAPI.SubmitDraft, true},
		{"AdminCancelProductEdit", http.MethodPost, "/admin/productos/editor/cancel", h.AdminProductsAPI.CancelEdit, true},
		{"AdminLookups", http.MethodGet, "/admin/lookups", h.AdminProductsAPI.Lookups, true},

		{"AdminListCustomers", http.MethodGet, "/admin/clientes", h.AdminCustomersAPI.ListCustomers, true},
		{"AdminCustomerEditor", http.MethodGet, "/admin/clientes/editor", h.AdminCustomersAPI.GetEditor, true},
		{"AdminSelectCustomer", http.MethodPost, "/admin/clientes/editor/select/:rut", h.AdminCustomersAPI.SelectCustomer, true},
		{"AdminUpdateCustomerDraft", http.MethodPatch, "/admin/clientes/editor", h.AdminCustomersAPI.UpdateDraft, true},
		{"AdminSubmitCustomer", http.MethodPost, "/admin/clientes/editor/submit", h.AdminCustomersAPI.SubmitDraft, true},
		{"AdminCancelCustomerEdit", http.MethodPost, "/admin/clientes/editor/cancel", h.AdminCustomersAPI.CancelEdit, true},

		{"AdminListOrders", http.MethodGet, "/admin/pedidos", h.AdminOrdersAPI.ListOrders, true},
		{"AdminGetOrder", http.MethodGet, "/admin/pedidos/:id", h.AdminOrdersAPI.GetOrder, true},
	}
}
