package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customersapp "github.com/Apurer/huerto-store/internal/domains/customers/application"
	customersdomain "github.com/Apurer/huerto-store/internal/domains/customers/domain"
	customersports "github.com/Apurer/huerto-store/internal/domains/customers/ports"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

// AdminCustomersAPI serves the customer back-office. Customers are never deleted.
type AdminCustomersAPI struct {
	customers customersports.Service
}

func NewAdminCustomersAPI(customers customersports.Service) AdminCustomersAPI {
	return AdminCustomersAPI{customers: customers}
}

// Get /admin/clientes
// Renders the customer table for the active filters
func (api *AdminCustomersAPI) ListCustomers(c *gin.Context) {
	query := customersports.CustomerQuery{
		Text:     c.Query("q"),
		Country:  c.Query("pais"),
		Frequent: filter.ParseTriState(c.Query("frecuente")),
	}
	customers, err := api.customers.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customersapp.CustomerTable(customers))
}

// Get /admin/clientes/editor
func (api *AdminCustomersAPI) GetEditor(c *gin.Context) {
	state, err := api.customers.EditorState(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Post /admin/clientes/editor/select/:rut
// Loads a customer into the editor
func (api *AdminCustomersAPI) SelectCustomer(c *gin.Context) {
	state, err := api.customers.SelectForEdit(c.Request.Context(), sessionFrom(c), c.Param("rut"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Patch /admin/clientes/editor
func (api *AdminCustomersAPI) UpdateDraft(c *gin.Context) {
	fields, err := bindForm(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	state, err := api.customers.UpdateDraft(c.Request.Context(), sessionFrom(c), fields)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Post /admin/clientes/editor/submit
// Validates the draft and adds or replaces the customer by RUT
func (api *AdminCustomersAPI) SubmitDraft(c *gin.Context) {
	result, err := api.customers.SubmitDraft(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, EditorCommit[customersdomain.Customer]{
		Record:  result.Customer,
		Created: result.Created,
		Applied: result.Applied,
		State:   result.State,
	})
}

// Post /admin/clientes/editor/cancel
func (api *AdminCustomersAPI) CancelEdit(c *gin.Context) {
	state, err := api.customers.CancelEdit(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
