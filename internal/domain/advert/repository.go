package advert

import (
	"context"

	"shopadmin-backend/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, a *Advert) error
	GetByAdvertID(ctx context.Context, advertID string) (*Advert, error)
	// GetByAdvertIDForUpdate locks the row; only meaningful inside a transaction.
	GetByAdvertIDForUpdate(ctx context.Context, advertID string) (*Advert, error)
	Save(ctx context.Context, a *Advert) error
	// List returns one page plus the total match count. An empty status means no filter.
	List(ctx context.Context, status Status, page pagination.Request) ([]Advert, int64, error)
}
