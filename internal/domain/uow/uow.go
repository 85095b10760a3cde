package uow

import (
	"context"

	"shopadmin-backend/internal/domain/advert"
)

type Repos struct {
	Adverts advert.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the advert row first, then pass it in
	WithinAdvertTx(ctx context.Context, advertID string, fn func(r Repos, a *advert.Advert) error) error
}
