package ordermock

import (
	"context"

	domain "shopadmin-backend/internal/domain/order"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UpsertFn           func(ctx context.Context, o *domain.Order) error
	GetByOrderNumberFn func(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListAllFn          func(ctx context.Context) ([]domain.Order, error)
	CountByStatusFn    func(ctx context.Context) (map[string]int64, error)
}

func (m *Repo) Upsert(ctx context.Context, o *domain.Order) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if m.GetByOrderNumberFn != nil {
		return m.GetByOrderNumberFn(ctx, orderNumber)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Order, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return map[string]int64{}, nil
}

// Source is a function-backed mock that satisfies domain.Source.
type Source struct {
	FetchOrderStatusFn      func(ctx context.Context, orderNumber string) (string, error)
	FetchAllOrderStatusesFn func(ctx context.Context) (map[string]string, error)
}

func (m *Source) FetchOrderStatus(ctx context.Context, orderNumber string) (string, error) {
	if m.FetchOrderStatusFn != nil {
		return m.FetchOrderStatusFn(ctx, orderNumber)
	}
	return "", domain.ErrSourceNotFound
}

func (m *Source) FetchAllOrderStatuses(ctx context.Context) (map[string]string, error) {
	if m.FetchAllOrderStatusesFn != nil {
		return m.FetchAllOrderStatusesFn(ctx)
	}
	return map[string]string{}, nil
}
