package mysql

import (
	"context"

	"shopadmin-backend/internal/domain/advert"
	"shopadmin-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{Adverts: &AdvertRepository{db: tx}})
	})
}

func (u *GormUoW) WithinAdvertTx(ctx context.Context, advertID string, fn func(r uow.Repos, a *advert.Advert) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{Adverts: &AdvertRepository{db: tx}}
		// lock the advert row up-front to prevent races between admin sessions
		a, err := r.Adverts.GetByAdvertIDForUpdate(ctx, advertID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
