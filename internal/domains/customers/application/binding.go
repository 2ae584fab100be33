package application

import (
	"strconv"
	"strings"

	"github.com/Apurer/huerto-store/internal/domains/customers/domain"
	"github.com/Apurer/huerto-store/internal/shared/editor"
	"github.com/Apurer/huerto-store/internal/shared/filter"
)

// Customer form fields.
const (
	FieldRUT             = "rut"
	FieldName            = "nombre"
	FieldPaternalSurname = "apellidoPaterno"
	FieldMaternalSurname = "apellidoMaterno"
	FieldCountry         = "pais"
	FieldOrders          = "pedidos"
	FieldFrequent        = "frecuente"
)

const (
	msgRequired = "campo obligatorio"
	msgNumeric  = "debe ser un número"
	msgNegative = "no puede ser negativo"
)

// CustomerBinding binds customers to the editor. The RUT is user supplied, so a create
// with a known RUT replaces that customer.
type CustomerBinding struct{}

var _ editor.Binding[domain.Customer] = CustomerBinding{}

func (CustomerBinding) IDField() string             { return FieldRUT }
func (CustomerBinding) ID(c domain.Customer) string { return c.RUT }

func (CustomerBinding) Encode(c domain.Customer) editor.Form {
	frequent := filter.TriStateNo
	if c.Frequent {
		frequent = filter.TriStateYes
	}
	return editor.Form{
		FieldRUT:             c.RUT,
		FieldName:            c.Name,
		FieldPaternalSurname: c.PaternalSurname,
		FieldMaternalSurname: c.MaternalSurname,
		FieldCountry:         c.Country,
		FieldOrders:          strconv.FormatInt(c.Orders, 10),
		FieldFrequent:        frequent.String(),
	}
}

func (CustomerBinding) Decode(form editor.Form) (domain.Customer, editor.FieldErrors) {
	errs := editor.FieldErrors{}
	c := domain.Customer{
		RUT:             strings.ToUpper(strings.TrimSpace(form[FieldRUT])),
		Name:            strings.TrimSpace(form[FieldName]),
		PaternalSurname: strings.TrimSpace(form[FieldPaternalSurname]),
		MaternalSurname: strings.TrimSpace(form[FieldMaternalSurname]),
		Country:         strings.TrimSpace(form[FieldCountry]),
		Frequent:        filter.ParseTriState(form[FieldFrequent]) == filter.TriStateYes,
	}
	for field, value := range map[string]string{
		FieldRUT:             c.RUT,
		FieldName:            c.Name,
		FieldPaternalSurname: c.PaternalSurname,
		FieldCountry:         c.Country,
	} {
		if value == "" {
			errs[field] = msgRequired
		}
	}
	if raw := strings.TrimSpace(form[FieldOrders]); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			errs[FieldOrders] = msgNumeric
		case n < 0:
			errs[FieldOrders] = msgNegative
		default:
			c.Orders = n
		}
	}
	if len(errs) == 0 {
		if err := c.Validate(); err != nil {
			errs[FieldRUT] = err.Error()
		}
	}
	return c, errs
}

// Assign keeps the user supplied RUT.
func (CustomerBinding) Assign(c domain.Customer, _ []domain.Customer) domain.Customer {
	return c
}
