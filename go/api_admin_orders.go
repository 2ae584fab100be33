package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/Apurer/huerto-store/internal/domains/orders/application"
	ordersports "github.com/Apurer/huerto-store/internal/domains/orders/ports"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

// AdminOrdersAPI serves the read-only order history.
type AdminOrdersAPI struct {
	orders    ordersports.Service
	formatter *table.Formatter
}

func NewAdminOrdersAPI(orders ordersports.Service, formatter *table.Formatter) AdminOrdersAPI {
	if formatter == nil {
		formatter = table.NewFormatter(table.DefaultLocale)
	}
	return AdminOrdersAPI{orders: orders, formatter: formatter}
}

// Get /admin/pedidos
// Renders the order table for the active filters
func (api *AdminOrdersAPI) ListOrders(c *gin.Context) {
	query := ordersports.OrderQuery{Text: c.Query("q"), Status: c.Query("estado")}
	orders, err := api.orders.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersapp.OrderTable(orders, api.formatter))
}

// Get /admin/pedidos/:id
// Find order by ID
func (api *AdminOrdersAPI) GetOrder(c *gin.Context) {
	order, err := api.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
