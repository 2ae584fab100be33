package application

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	"github.com/Apurer/huerto-store/internal/shared/editor"
)

// Product form fields.
const (
	FieldID          = "id"
	FieldName        = "nombre"
	FieldCategory    = "categoria"
	FieldDescription = "descripcion"
	FieldPrice       = "precio"
	FieldStock       = "stock"
	FieldOrigin      = "origen"
	FieldImage       = "imagen"
)

const (
	msgRequired = "campo obligatorio"
	msgNumeric  = "debe ser un número"
	msgNegative = "no puede ser negativo"
)

// ProductBinding binds products to the editor. Identifiers are always generated on create.
type ProductBinding struct{}

var _ editor.Binding[domain.Product] = ProductBinding{}

func (ProductBinding) IDField() string { return FieldID }

func (ProductBinding) ID(p domain.Product) string {
	return strconv.FormatInt(p.ID, 10)
}

func (ProductBinding) Encode(p domain.Product) editor.Form {
	return editor.Form{
		FieldID:          strconv.FormatInt(p.ID, 10),
		FieldName:        p.Name,
		FieldCategory:    p.Category,
		FieldDescription: p.Description,
		FieldPrice:       strconv.FormatInt(p.Price, 10),
		FieldStock:       strconv.FormatInt(p.Stock, 10),
		FieldOrigin:      p.Origin,
		FieldImage:       p.Image,
	}
}

func (ProductBinding) Decode(form editor.Form) (domain.Product, editor.FieldErrors) {
	errs := editor.FieldErrors{}
	p := domain.Product{
		Name:        strings.TrimSpace(form[FieldName]),
		Category:    strings.TrimSpace(form[FieldCategory]),
		Description: strings.TrimSpace(form[FieldDescription]),
		Origin:      strings.TrimSpace(form[FieldOrigin]),
		Image:       strings.TrimSpace(form[FieldImage]),
	}
	p.ID = parseAmount(form, FieldID, errs)
	p.Price = parseAmount(form, FieldPrice, errs)
	p.Stock = parseAmount(form, FieldStock, errs)
	if p.Name == "" {
		errs[FieldName] = msgRequired
	}
	if p.Category == "" {
		errs[FieldCategory] = msgRequired
	}
	if len(errs) == 0 {
		if err := p.Validate(); err != nil {
			errs[fieldForError(err)] = err.Error()
		}
	}
	p.ApplyDefaults()
	return p, errs
}

// Assign gives a created product the next identifier of collection.
func (ProductBinding) Assign(p domain.Product, collection []domain.Product) domain.Product {
	p.ID = domain.NextID(collection)
	return p
}

// parseAmount reads an optional non-negative integer; absent values are zero.
func parseAmount(form editor.Form, field string, errs editor.FieldErrors) int64 {
	raw := strings.TrimSpace(form[field])
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs[field] = msgNumeric
		return 0
	}
	if n < 0 {
		errs[field] = msgNegative
	}
	return n
}

func fieldForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return FieldName
	case errors.Is(err, domain.ErrEmptyCategory):
		return FieldCategory
	case errors.Is(err, domain.ErrNegativePrice):
		return FieldPrice
	case errors.Is(err, domain.ErrNegativeStock):
		return FieldStock
	}
	return FieldID
}
