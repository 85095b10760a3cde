package uowmock

import (
	"context"
	"errors"

	"shopadmin-backend/internal/domain/advert"
	"shopadmin-backend/internal/domain/uow"
)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinAdvertTxFn func(ctx context.Context, advertID string, fn func(r uow.Repos, a *advert.Advert) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAdvertTx(ctx context.Context, advertID string, fn func(r uow.Repos, a *advert.Advert) error) error {
	if m.WithinAdvertTxFn != nil {
		return m.WithinAdvertTxFn(ctx, advertID, fn)
	}
	return errUnimplemented
}
