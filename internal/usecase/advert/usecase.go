package advert

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "shopadmin-backend/internal/domain/advert"
	"shopadmin-backend/internal/domain/uow"
	"shopadmin-backend/pkg/id"
	"shopadmin-backend/pkg/pagination"

	"gorm.io/gorm"
)

const (
	MinDurationDays = 1
	MaxDurationDays = 365
	MaxNotesLen     = 500
	MaxReasonLen    = 500
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrStartDateRequired = fmt.Errorf("%w: startDate is required when action is APPROVE", ErrInvalidInput)
	ErrReasonRequired    = fmt.Errorf("%w: rejectionReason is required when action is REJECT", ErrInvalidInput)
	ErrUnknownAction     = fmt.Errorf("%w: action must be APPROVE or REJECT", ErrInvalidInput)
)

var listDefaults = pagination.Defaults{PageSize: 10, SortBy: "createdAt", SortDir: "desc"}

// sortable fields accepted by List; the repository maps them to columns.
var sortableFields = []string{"createdAt", "status", "durationDays", "startDate", "endDate"}

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

// NewUsecase: the repo serves reads, the UoW serves transitions.
func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*AdvertDTO, error) {
	switch {
	case !id.Valid(in.ProductID):
		return nil, fmt.Errorf("%w: productId must be a UUID", ErrInvalidInput)
	case in.ProductName == "":
		return nil, fmt.Errorf("%w: productName is required", ErrInvalidInput)
	case in.DurationDays < MinDurationDays || in.DurationDays > MaxDurationDays:
		return nil, fmt.Errorf("%w: durationDays must be between %d and %d", ErrInvalidInput, MinDurationDays, MaxDurationDays)
	case len(in.Notes) > MaxNotesLen:
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, MaxNotesLen)
	case !id.Valid(in.Requester.StaffID):
		return nil, fmt.Errorf("%w: requester id must be a UUID", ErrInvalidInput)
	}

	now := u.now()
	a := &domain.Advert{
		AdvertID:        id.New(),
		ProductID:       in.ProductID,
		ProductName:     in.ProductName,
		RequesterID:     in.Requester.StaffID,
		RequesterName:   in.Requester.StaffName,
		Status:          domain.StatusPending,
		DurationDays:    in.DurationDays,
		Notes:           in.Notes,
		StatusUpdatedAt: now,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a, now), nil
}

func (u *Usecase) Get(ctx context.Context, advertID string) (*AdvertDTO, error) {
	a, err := u.repo.GetByAdvertID(ctx, advertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a, u.now()), nil
}

// List validates the status filter against the enum before touching the store,
// so an unknown status never reaches the backend as a query.
func (u *Usecase) List(ctx context.Context, statusFilter string, page pagination.Request) (*pagination.Response[AdvertDTO], error) {
	page = page.Normalize(listDefaults)
	if verr := page.Validate(sortableFields...); verr != nil {
		return nil, verr
	}

	var status domain.Status
	if statusFilter != "" {
		st, err := domain.ParseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = st
	}

	items, total, err := u.repo.List(ctx, status, page)
	if err != nil {
		return nil, err
	}
	now := u.now()
	dtos := make([]AdvertDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *toDTO(&items[i], now))
	}
	resp := pagination.NewResponse(dtos, page, total)
	return &resp, nil
}

// ProcessApproval applies the approve/reject decision to a PENDING advert.
// Conditional-field validation happens before the transaction opens, so a bad
// payload can never partially apply.
func (u *Usecase) ProcessApproval(ctx context.Context, in ApprovalInput) (*AdvertDTO, error) {
	switch in.Action {
	case ActionApprove:
		if in.StartDate == nil {
			return nil, ErrStartDateRequired
		}
	case ActionReject:
		if in.RejectionReason == "" {
			return nil, ErrReasonRequired
		}
		if len(in.RejectionReason) > MaxReasonLen {
			return nil, fmt.Errorf("%w: rejectionReason must be at most %d characters", ErrInvalidInput, MaxReasonLen)
		}
	default:
		return nil, ErrUnknownAction
	}
	if u.uow == nil {
		return nil, domain.ErrInvalidTransition
	}

	var dto *AdvertDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Adverts.GetByAdvertIDForUpdate(ctx, in.AdvertID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		// State guard: only PENDING adverts can be processed. Concurrent
		// approvers lose this race with a conflict, never a double stamp.
		if a.Status != domain.StatusPending {
			if a.Status == domain.StatusApproved || a.Status == domain.StatusActive {
				return domain.ErrAlreadyProcessed
			}
			return domain.ErrInvalidTransition
		}

		now := u.now()
		switch in.Action {
		case ActionApprove:
			start := in.StartDate.UTC()
			end := start.AddDate(0, 0, a.DurationDays)
			next := domain.StatusForWindow(start, now)
			if !domain.CanTransition(a.Status, next) {
				return domain.ErrInvalidTransition
			}
			a.Status = next
			a.StartDate = &start
			a.EndDate = &end
			a.ApprovedAt = &now
			a.ApprovedByName = in.Approver.StaffName
		case ActionReject:
			a.Status = domain.StatusRejected
			a.RejectionReason = in.RejectionReason
		}
		a.StatusUpdatedAt = now

		if err := r.Adverts.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Cancel is legal only from APPROVED or ACTIVE. Approval metadata stays on the
// record for audit.
func (u *Usecase) Cancel(ctx context.Context, in CancelInput) (*AdvertDTO, error) {
	if in.CancellationReason == "" || len(in.CancellationReason) > MaxReasonLen {
		return nil, fmt.Errorf("%w: cancellationReason must be 1..%d characters", ErrInvalidInput, MaxReasonLen)
	}
	if u.uow == nil {
		return nil, domain.ErrInvalidTransition
	}

	var dto *AdvertDTO
	err := u.uow.WithinAdvertTx(ctx, in.AdvertID, func(r uow.Repos, a *domain.Advert) error {
		if a.Status != domain.StatusApproved && a.Status != domain.StatusActive {
			return domain.ErrNotCancellable
		}
		now := u.now()
		a.Status = domain.StatusCancelled
		a.CancellationReason = in.CancellationReason
		a.StatusUpdatedAt = now
		if err := r.Adverts.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a, now)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Pause suspends serving for an APPROVED or ACTIVE advert.
func (u *Usecase) Pause(ctx context.Context, advertID string) (*AdvertDTO, error) {
	return u.transition(ctx, advertID, func(a *domain.Advert, now time.Time) (domain.Status, error) {
		if a.Status != domain.StatusApproved && a.Status != domain.StatusActive {
			return "", domain.ErrInvalidTransition
		}
		return domain.StatusPaused, nil
	})
}

// Resume returns a PAUSED advert to ACTIVE or APPROVED depending on whether
// its window has opened.
func (u *Usecase) Resume(ctx context.Context, advertID string) (*AdvertDTO, error) {
	return u.transition(ctx, advertID, func(a *domain.Advert, now time.Time) (domain.Status, error) {
		if a.Status != domain.StatusPaused {
			return "", domain.ErrInvalidTransition
		}
		if a.StartDate == nil {
			return "", domain.ErrInvalidTransition
		}
		return domain.StatusForWindow(*a.StartDate, now), nil
	})
}

func (u *Usecase) transition(ctx context.Context, advertID string, decide func(a *domain.Advert, now time.Time) (domain.Status, error)) (*AdvertDTO, error) {
	if u.uow == nil {
		return nil, domain.ErrInvalidTransition
	}
	var dto *AdvertDTO
	err := u.uow.WithinAdvertTx(ctx, advertID, func(r uow.Repos, a *domain.Advert) error {
		now := u.now()
		next, err := decide(a, now)
		if err != nil {
			return err
		}
		if !domain.CanTransition(a.Status, next) {
			return domain.ErrInvalidTransition
		}
		a.Status = next
		a.StatusUpdatedAt = now
		if err := r.Adverts.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a, now)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
