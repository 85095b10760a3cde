package http

import (
	"net/http"

	"shopadmin-backend/internal/usecase/ordersync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	uc  *ordersync.Usecase
	log zerolog.Logger
}

func NewOrderHandler(uc *ordersync.Usecase, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

func (h *OrderHandler) SyncAll(c echo.Context) error {
	report, err := h.uc.SyncAll(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, report)
}

func (h *OrderHandler) SyncOrder(c echo.Context) error {
	report, err := h.uc.SyncOrder(c.Request().Context(), c.Param("order_number"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, report)
}

func (h *OrderHandler) Summary(c echo.Context) error {
	summary, err := h.uc.GetSummary(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, summary)
}
