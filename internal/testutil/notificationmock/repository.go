package notificationmock

import (
	"context"

	domain "shopadmin-backend/internal/domain/notification"
	"shopadmin-backend/pkg/pagination"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn          func(ctx context.Context, status domain.Status, page pagination.Request) ([]domain.Log, int64, error)
	CountByStatusFn func(ctx context.Context) (map[domain.Status]int64, error)
}

func (m *Repo) List(ctx context.Context, status domain.Status, page pagination.Request) ([]domain.Log, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status, page)
	}
	return nil, 0, context.Canceled
}

func (m *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return map[domain.Status]int64{}, nil
}
