package storefrontserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/Apurer/huerto-store/internal/domains/catalog/application"
	catalogports "github.com/Apurer/huerto-store/internal/domains/catalog/ports"
	customersapp "github.com/Apurer/huerto-store/internal/domains/customers/application"
	customersports "github.com/Apurer/huerto-store/internal/domains/customers/ports"
	ordersports "github.com/Apurer/huerto-store/internal/domains/orders/ports"
	sessionsports "github.com/Apurer/huerto-store/internal/domains/sessions/ports"
	"github.com/Apurer/huerto-store/internal/shared/editor"
	apierrors "github.com/Apurer/huerto-store/internal/shared/errors"
)

// responder maps service errors to problem details; anything unmapped is a 500.
var responder = apierrors.NewResponder(
	mapValidationError,
	mapNotFound,
	mapUnauthorized,
	mapInvalidInput,
)

func mapValidationError(_ *gin.Context, err error) (apierrors.ProblemDetail, bool) {
	var verr *editor.ValidationError
	if !errors.As(err, &verr) {
		return apierrors.ProblemDetail{}, false
	}
	return apierrors.NewValidationProblem(verr.Fields), true
}

// mapNotFound names the missing record after the last route parameter, if any.
func mapNotFound(c *gin.Context, err error) (apierrors.ProblemDetail, bool) {
	var resource string
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		resource = "producto"
	case errors.Is(err, customersports.ErrNotFound):
		resource = "cliente"
	case errors.Is(err, ordersports.ErrNotFound):
		resource = "pedido"
	default:
		return apierrors.ProblemDetail{}, false
	}
	if n := len(c.Params); n > 0 {
		return apierrors.NewNotFoundProblem(resource, c.Params[n-1].Value), true
	}
	return apierrors.ErrNotFound.WithDetail(err.Error()).WithExtension("resourceType", resource), true
}

func mapUnauthorized(_ *gin.Context, err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, sessionsports.ErrUnauthorized) {
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapInvalidInput(_ *gin.Context, err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, customersapp.ErrInvalidInput),
		errors.Is(err, editor.ErrIdentifierReadOnly):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondServiceError renders an error returned by an application service.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// respondBadRequest is used for transport-level failures such as unparsable parameters.
func respondBadRequest(c *gin.Context, err error) {
	responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}
