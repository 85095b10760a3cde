package http

import (
	"net/http"

	notificationUC "shopadmin-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type NotificationHandler struct {
	uc  *notificationUC.Usecase
	log zerolog.Logger
}

func NewNotificationHandler(uc *notificationUC.Usecase, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

func (h *NotificationHandler) ListLogs(c echo.Context) error {
	page, perr := bindPageParams(c)
	if perr != nil {
		return failFields(c, "validation failed", map[string]string{perr.param: "must be an integer"})
	}
	resp, err := h.uc.List(c.Request().Context(), c.QueryParam("deliveryStatus"), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, resp)
}

func (h *NotificationHandler) Summary(c echo.Context) error {
	summary, err := h.uc.GetSummary(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, summary)
}
