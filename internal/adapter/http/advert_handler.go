package http

import (
	"net/http"
	"time"

	"shopadmin-backend/internal/adapter/middleware"
	advertUC "shopadmin-backend/internal/usecase/advert"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type AdvertHandler struct {
	uc  *advertUC.Usecase
	log zerolog.Logger
}

func NewAdvertHandler(uc *advertUC.Usecase, log zerolog.Logger) *AdvertHandler {
	return &AdvertHandler{uc: uc, log: log}
}

type createAdvertReq struct {
	ProductID    string `json:"productId"    validate:"required,uuid4"`
	ProductName  string `json:"productName"  validate:"required,max=160"`
	DurationDays int    `json:"durationDays" validate:"required,gte=1,lte=365"`
	Notes        string `json:"notes"        validate:"omitempty,max=500"`
}

func (h *AdvertHandler) CreateAdvert(c echo.Context) error {
	var req createAdvertReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failFields(c, "validation failed", ToFieldErrors(err))
	}

	actor := middleware.ActorFrom(c)
	dto, err := h.uc.Create(c.Request().Context(), advertUC.CreateInput{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		DurationDays: req.DurationDays,
		Notes:        req.Notes,
		Requester:    advertUC.Actor{StaffID: actor.StaffID, StaffName: actor.StaffName},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusCreated, dto)
}

func (h *AdvertHandler) GetAdvert(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("advert_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *AdvertHandler) ListAdverts(c echo.Context) error {
	page, err := bindPageParams(c)
	if err != nil {
		return failFields(c, "validation failed", map[string]string{err.param: "must be an integer"})
	}
	resp, uerr := h.uc.List(c.Request().Context(), c.QueryParam("advertStatus"), page)
	if uerr != nil {
		return writeError(c, h.log, uerr)
	}
	return ok(c, http.StatusOK, resp)
}

type approvalReq struct {
	Action          string `json:"action"          validate:"required,oneof=APPROVE REJECT"`
	RejectionReason string `json:"rejectionReason" validate:"required_if=Action REJECT,omitempty,max=500"`
	// RFC3339, required for APPROVE
	StartDate string `json:"startDate" validate:"required_if=Action APPROVE,omitempty"`
}

func (h *AdvertHandler) ProcessApproval(c echo.Context) error {
	advertID := c.Param("advert_id")
	if advertID == "" {
		return fail(c, http.StatusBadRequest, "missing advert_id path param")
	}
	var req approvalReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failFields(c, "validation failed", ToFieldErrors(err))
	}

	var startDate *time.Time
	if req.StartDate != "" {
		t, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return failFields(c, "validation failed", map[string]string{"startDate": "must be an RFC3339 datetime"})
		}
		startDate = &t
	}

	actor := middleware.ActorFrom(c)
	dto, err := h.uc.ProcessApproval(c.Request().Context(), advertUC.ApprovalInput{
		AdvertID:        advertID,
		Action:          advertUC.ApprovalAction(req.Action),
		StartDate:       startDate,
		RejectionReason: req.RejectionReason,
		Approver:        advertUC.Actor{StaffID: actor.StaffID, StaffName: actor.StaffName},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, dto)
}

type cancelAdvertReq struct {
	CancellationReason string `json:"cancellationReason" validate:"required,min=1,max=500"`
}

func (h *AdvertHandler) CancelAdvert(c echo.Context) error {
	var req cancelAdvertReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failFields(c, "validation failed", ToFieldErrors(err))
	}

	actor := middleware.ActorFrom(c)
	dto, err := h.uc.Cancel(c.Request().Context(), advertUC.CancelInput{
		AdvertID:           c.Param("advert_id"),
		CancellationReason: req.CancellationReason,
		Actor:              advertUC.Actor{StaffID: actor.StaffID, StaffName: actor.StaffName},
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *AdvertHandler) PauseAdvert(c echo.Context) error {
	dto, err := h.uc.Pause(c.Request().Context(), c.Param("advert_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *AdvertHandler) ResumeAdvert(c echo.Context) error {
	dto, err := h.uc.Resume(c.Request().Context(), c.Param("advert_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, http.StatusOK, dto)
}
