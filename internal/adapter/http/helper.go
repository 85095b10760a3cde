package http

import (
	"errors"
	"net/http"

	"shopadmin-backend/internal/adapter/source"
	advertDomain "shopadmin-backend/internal/domain/advert"
	notifDomain "shopadmin-backend/internal/domain/notification"
	orderDomain "shopadmin-backend/internal/domain/order"
	advertUC "shopadmin-backend/internal/usecase/advert"
	"shopadmin-backend/internal/usecase/ordersync"
	"shopadmin-backend/pkg/pagination"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Envelope is the uniform result shape of every endpoint. Expected failures
// (validation, conflicts) ride in here; only transport-level surprises become
// generic 5xx responses.
type Envelope struct {
	Success     bool              `json:"success"`
	Data        any               `json:"data,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Success: true, Data: data})
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, Envelope{Success: false, Error: msg})
}

func failFields(c echo.Context, msg string, fields map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, Envelope{Success: false, Error: msg, FieldErrors: fields})
}

// writeError maps the error taxonomy onto HTTP codes: validation 422,
// precondition conflicts 409, missing entities 404, upstream trouble 502,
// everything unexpected a logged generic 500.
func writeError(c echo.Context, log zerolog.Logger, err error) error {
	var verr *pagination.ValidationError
	if errors.As(err, &verr) {
		return failFields(c, "validation failed", verr.Fields)
	}

	switch {
	case errors.Is(err, advertUC.ErrInvalidInput),
		errors.Is(err, advertDomain.ErrInvalidStatus),
		errors.Is(err, notifDomain.ErrInvalidStatus),
		errors.Is(err, ordersync.ErrInvalidOrderNumber):
		return fail(c, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, advertDomain.ErrAlreadyProcessed),
		errors.Is(err, advertDomain.ErrInvalidTransition),
		errors.Is(err, advertDomain.ErrNotCancellable):
		return fail(c, http.StatusConflict, err.Error())

	case errors.Is(err, advertDomain.ErrNotFound),
		errors.Is(err, orderDomain.ErrNotFound):
		return fail(c, http.StatusNotFound, "not found")
	}

	var gerr *source.GatewayError
	if errors.As(err, &gerr) {
		log.Error().Err(err).Str("path", c.Path()).Msg("commerce backend error")
		return fail(c, http.StatusBadGateway, "upstream service unavailable")
	}

	// unknown failures are logged, never leaked
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return fail(c, http.StatusInternalServerError, "internal error")
}
