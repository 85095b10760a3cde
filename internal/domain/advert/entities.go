package advert

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusActive    Status = "ACTIVE"
	StatusRejected  Status = "REJECTED"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
	StatusPaused    Status = "PAUSED"
)

var (
	ErrNotFound          = errors.New("advert not found")
	ErrInvalidTransition = errors.New("advert state does not permit this transition")
	ErrAlreadyProcessed  = errors.New("advert has already been processed")
	ErrNotCancellable    = errors.New("advert is not cancellable in its current state")
	ErrInvalidStatus     = errors.New("unknown advert status")
)

// transitions is the full legal-transition table. Expiry is time-derived and
// recorded here only so a backend-driven ACTIVE -> EXPIRED write stays legal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusActive, StatusRejected},
	StatusApproved: {StatusActive, StatusCancelled, StatusPaused},
	StatusActive:   {StatusCancelled, StatusExpired, StatusPaused},
	StatusPaused:   {StatusApproved, StatusActive, StatusCancelled},
}

// Statuses returns every declared status, in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusPending, StatusApproved, StatusActive,
		StatusRejected, StatusExpired, StatusCancelled, StatusPaused,
	}
}

// ParseStatus validates a caller-supplied status string against the enum.
// Matching is case-sensitive: the wire values are upper-case.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if Status(s) == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is declared legal.
func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// StatusForWindow decides the post-approval status: an advert whose window has
// already opened goes straight to ACTIVE, otherwise it waits in APPROVED.
func StatusForWindow(start, now time.Time) Status {
	if !start.After(now) {
		return StatusActive
	}
	return StatusApproved
}

type Advert struct {
	ID                 uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	AdvertID           string         `gorm:"column:advert_id;type:char(36);not null;uniqueIndex:ux_adverts_advert_id_active" json:"advert_id"`
	ProductID          string         `gorm:"column:product_id;type:char(36);not null;index" json:"product_id"`
	ProductName        string         `gorm:"column:product_name;size:160;not null" json:"product_name"`
	RequesterID        string         `gorm:"column:requester_id;type:char(36);not null;index:idx_adverts_requester_status" json:"requester_id"`
	RequesterName      string         `gorm:"column:requester_name;size:120;not null" json:"requester_name"`
	Status             Status         `gorm:"column:status;type:enum('PENDING','APPROVED','ACTIVE','REJECTED','EXPIRED','CANCELLED','PAUSED');default:'PENDING';index:idx_adverts_requester_status" json:"status"`
	DurationDays       int            `gorm:"column:duration_days;not null" json:"duration_days"`
	Notes              string         `gorm:"column:notes;size:500" json:"notes"`
	StartDate          *time.Time     `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate            *time.Time     `gorm:"column:end_date" json:"end_date,omitempty"`
	ApprovedByName     string         `gorm:"column:approved_by_name;size:120" json:"approved_by_name,omitempty"`
	ApprovedAt         *time.Time     `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectionReason    string         `gorm:"column:rejection_reason;size:500" json:"rejection_reason,omitempty"`
	CancellationReason string         `gorm:"column:cancellation_reason;size:500" json:"cancellation_reason,omitempty"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Advert) TableName() string { return "adverts" }

// ExpiredAt reports whether the promotion window has closed. Adverts without
// an end date (not yet approved) never count as expired.
func (a *Advert) ExpiredAt(now time.Time) bool {
	return a.EndDate != nil && now.After(*a.EndDate)
}

// ActiveAt reports whether the advert is currently being served: the window
// has opened, has not closed, and the advert is not paused or terminal.
func (a *Advert) ActiveAt(now time.Time) bool {
	if a.Status != StatusApproved && a.Status != StatusActive {
		return false
	}
	if a.StartDate == nil || now.Before(*a.StartDate) {
		return false
	}
	return !a.ExpiredAt(now)
}

// DaysRemaining is ceil((endDate - now) / 1 day), floored at zero.
func (a *Advert) DaysRemaining(now time.Time) int {
	if a.EndDate == nil || a.ExpiredAt(now) {
		return 0
	}
	rem := a.EndDate.Sub(now)
	days := int(rem / (24 * time.Hour))
	if rem%(24*time.Hour) > 0 {
		days++
	}
	return days
}
