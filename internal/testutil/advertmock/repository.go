package advertmock

import (
	"context"

	domain "shopadmin-backend/internal/domain/advert"
	"shopadmin-backend/pkg/pagination"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only the methods a test sets are exercised; the rest return zero values.
type Repo struct {
	CreateFn                 func(ctx context.Context, a *domain.Advert) error
	GetByAdvertIDFn          func(ctx context.Context, advertID string) (*domain.Advert, error)
	GetByAdvertIDForUpdateFn func(ctx context.Context, advertID string) (*domain.Advert, error)
	SaveFn                   func(ctx context.Context, a *domain.Advert) error
	ListFn                   func(ctx context.Context, status domain.Status, page pagination.Request) ([]domain.Advert, int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Advert) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAdvertID(ctx context.Context, advertID string) (*domain.Advert, error) {
	if m.GetByAdvertIDFn != nil {
		return m.GetByAdvertIDFn(ctx, advertID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByAdvertIDForUpdate(ctx context.Context, advertID string) (*domain.Advert, error) {
	if m.GetByAdvertIDForUpdateFn != nil {
		return m.GetByAdvertIDForUpdateFn(ctx, advertID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Advert) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, status domain.Status, page pagination.Request) ([]domain.Advert, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status, page)
	}
	return nil, 0, context.Canceled
}
