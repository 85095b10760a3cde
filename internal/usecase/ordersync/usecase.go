package ordersync

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "shopadmin-backend/internal/domain/order"
)

const (
	MinOrderNumberLen = 1
	MaxOrderNumberLen = 50
)

var ErrInvalidOrderNumber = errors.New("orderNumber must be 1..50 characters")

// Outcomes reported per record inside the sync payload. Record-level problems
// never fail the caller; only transport/auth errors do.
const (
	OutcomeSynced         = "synced"
	OutcomeUnchanged      = "unchanged"
	OutcomeCreated        = "created"
	OutcomeNotFoundSource = "not_found_at_source"
)

// Report maps orderNumber -> outcome message.
type Report map[string]string

type Summary struct {
	TotalOrders   int64            `json:"totalOrders"`
	CountByStatus map[string]int64 `json:"countByStatus"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

type Usecase struct {
	orders domain.Repository
	source domain.Source
	now    func() time.Time
}

func NewUsecase(orders domain.Repository, source domain.Source) *Usecase {
	return &Usecase{orders: orders, source: source, now: func() time.Time { return time.Now().UTC() }}
}

// SyncAll reconciles every cached order against the authoritative source.
// Safe to call repeatedly: a second run over a consistent fleet reports every
// record as unchanged.
func (u *Usecase) SyncAll(ctx context.Context) (Report, error) {
	authoritative, err := u.source.FetchAllOrderStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch authoritative statuses: %w", err)
	}
	cached, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	report := Report{}
	known := map[string]bool{}
	for i := range cached {
		o := &cached[i]
		known[o.OrderNumber] = true

		status, ok := authoritative[o.OrderNumber]
		if !ok {
			report[o.OrderNumber] = OutcomeNotFoundSource
			continue
		}
		if status == o.Status {
			report[o.OrderNumber] = OutcomeUnchanged
			continue
		}
		o.Status = status
		o.LastSyncAt = now
		if err := u.orders.Upsert(ctx, o); err != nil {
			return nil, err
		}
		report[o.OrderNumber] = OutcomeSynced
	}

	// orders the source knows about but the cache does not
	for num, status := range authoritative {
		if known[num] {
			continue
		}
		if err := u.orders.Upsert(ctx, &domain.Order{OrderNumber: num, Status: status, LastSyncAt: now}); err != nil {
			return nil, err
		}
		report[num] = OutcomeCreated
	}
	return report, nil
}

// SyncOrder reconciles exactly one order. A source-side miss is reported in
// the payload, not as an error.
func (u *Usecase) SyncOrder(ctx context.Context, orderNumber string) (Report, error) {
	if len(orderNumber) < MinOrderNumberLen || len(orderNumber) > MaxOrderNumberLen {
		return nil, ErrInvalidOrderNumber
	}

	status, err := u.source.FetchOrderStatus(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrSourceNotFound) {
			return Report{orderNumber: OutcomeNotFoundSource}, nil
		}
		return nil, fmt.Errorf("fetch order status: %w", err)
	}

	now := u.now()
	cached, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	switch {
	case err == nil:
		if cached.Status == status {
			return Report{orderNumber: OutcomeUnchanged}, nil
		}
		cached.Status = status
		cached.LastSyncAt = now
		if err := u.orders.Upsert(ctx, cached); err != nil {
			return nil, err
		}
		return Report{orderNumber: OutcomeSynced}, nil
	case errors.Is(err, domain.ErrNotFound):
		if err := u.orders.Upsert(ctx, &domain.Order{OrderNumber: orderNumber, Status: status, LastSyncAt: now}); err != nil {
			return nil, err
		}
		return Report{orderNumber: OutcomeCreated}, nil
	default:
		return nil, err
	}
}

// GetSummary is a read-only aggregate over the cache; no side effects.
func (u *Usecase) GetSummary(ctx context.Context) (*Summary, error) {
	counts, err := u.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	return &Summary{TotalOrders: total, CountByStatus: counts, GeneratedAt: u.now()}, nil
}
