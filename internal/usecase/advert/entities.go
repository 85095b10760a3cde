package advert

import (
	"time"

	domain "shopadmin-backend/internal/domain/advert"
)

// Actor is the authenticated staff member performing an operation. Identity is
// threaded explicitly into every mutating call instead of read from ambient
// session state.
type Actor struct {
	StaffID   string
	StaffName string
}

type CreateInput struct {
	ProductID    string
	ProductName  string
	DurationDays int
	Notes        string
	Requester    Actor
}

type ApprovalAction string

const (
	ActionApprove ApprovalAction = "APPROVE"
	ActionReject  ApprovalAction = "REJECT"
)

// ApprovalInput carries the conditional fields of the approve/reject decision:
// StartDate only for APPROVE, RejectionReason only for REJECT.
type ApprovalInput struct {
	AdvertID        string
	Action          ApprovalAction
	StartDate       *time.Time
	RejectionReason string
	Approver        Actor
}

type CancelInput struct {
	AdvertID           string
	CancellationReason string
	Actor              Actor
}

type AdvertDTO struct {
	AdvertID           string     `json:"advertId"`
	ProductID          string     `json:"productId"`
	ProductName        string     `json:"productName"`
	RequesterID        string     `json:"requesterId"`
	RequesterName      string     `json:"requesterName"`
	Status             string     `json:"status"`
	DurationDays       int        `json:"durationDays"`
	Notes              string     `json:"notes,omitempty"`
	StartDate          *time.Time `json:"startDate,omitempty"`
	EndDate            *time.Time `json:"endDate,omitempty"`
	ApprovedByName     string     `json:"approvedByName,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	RejectionReason    string     `json:"rejectionReason,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	IsActive           bool       `json:"isActive"`
	IsExpired          bool       `json:"isExpired"`
	DaysRemaining      int        `json:"daysRemaining"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toDTO(a *domain.Advert, now time.Time) *AdvertDTO {
	return &AdvertDTO{
		AdvertID:           a.AdvertID,
		ProductID:          a.ProductID,
		ProductName:        a.ProductName,
		RequesterID:        a.RequesterID,
		RequesterName:      a.RequesterName,
		Status:             string(a.Status),
		DurationDays:       a.DurationDays,
		Notes:              a.Notes,
		StartDate:          a.StartDate,
		EndDate:            a.EndDate,
		ApprovedByName:     a.ApprovedByName,
		ApprovedAt:         a.ApprovedAt,
		RejectionReason:    a.RejectionReason,
		CancellationReason: a.CancellationReason,
		IsActive:           a.ActiveAt(now),
		IsExpired:          a.ExpiredAt(now),
		DaysRemaining:      a.DaysRemaining(now),
		CreatedAt:          a.CreatedAt,
	}
}
