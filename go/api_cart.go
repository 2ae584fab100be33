package storefrontserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/Apurer/huerto-store/internal/domains/cart/domain"
	cartports "github.com/Apurer/huerto-store/internal/domains/cart/ports"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

// cartEventName is the server-sent event type carrying cart summaries.
const cartEventName = "carrito"

// CartAPI serves the shopping cart.
type CartAPI struct {
	cart      cartports.Service
	formatter *table.Formatter
}

func NewCartAPI(cart cartports.Service, formatter *table.Formatter) CartAPI {
	if formatter == nil {
		formatter = table.NewFormatter(table.DefaultLocale)
	}
	return CartAPI{cart: cart, formatter: formatter}
}

// AddToCartRequest accepts cantidad as a JSON number or as raw form text.
type AddToCartRequest struct {
	ProductID int64           `json:"idProducto" binding:"required"`
	Quantity  json.RawMessage `json:"cantidad"`
}

// CartView is the cart with its aggregates.
type CartView struct {
	Lines          []cartdomain.Line `json:"items"`
	Units          int64             `json:"unidades"`
	Total          int64             `json:"total"`
	FormattedTotal string            `json:"totalFormateado"`
}

// Get /api/carrito
// Returns the cart
func (api *CartAPI) GetCart(c *gin.Context) {
	cart, err := api.cart.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.view(cart))
}

// Post /api/carrito
// Adds a product to the cart
func (api *CartAPI) AddToCart(c *gin.Context) {
	var payload AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	quantity := cartdomain.ParseQuantity(rawText(payload.Quantity))
	cart, err := api.cart.AddToCart(c.Request.Context(), payload.ProductID, quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.view(cart))
}

// Delete /api/carrito
// Empties the cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	if err := api.cart.Clear(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /api/carrito/events
// Streams cart summaries as server-sent events, starting with the current one
func (api *CartAPI) StreamCartEvents(c *gin.Context) {
	ctx := c.Request.Context()
	updates, cancel := api.cart.Subscribe()
	defer cancel()

	cart, err := api.cart.Get(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.SSEvent(cartEventName, cart.Summary())
	c.Writer.Flush()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case changed, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent(cartEventName, changed)
			return true
		}
	})
}

func (api *CartAPI) view(cart cartdomain.Cart) CartView {
	lines := []cartdomain.Line(cart)
	if lines == nil {
		lines = []cartdomain.Line{}
	}
	return CartView{
		Lines:          lines,
		Units:          cart.Units(),
		Total:          cart.Total(),
		FormattedTotal: api.formatter.Currency(cart.Total()),
	}
}

// rawText returns a JSON string's contents, or the literal text of any other value.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
