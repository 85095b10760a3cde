package mysql

import (
	"context"

	advertDomain "shopadmin-backend/internal/domain/advert"
	"shopadmin-backend/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// advertSortColumns maps the wire-level sortBy names to columns. Anything not
// in this map has already been rejected by usecase validation.
var advertSortColumns = map[string]string{
	"createdAt":    "created_at",
	"status":       "status",
	"durationDays": "duration_days",
	"startDate":    "start_date",
	"endDate":      "end_date",
}

type AdvertRepository struct{ db *gorm.DB }

func NewAdvertRepository(db *gorm.DB) *AdvertRepository { return &AdvertRepository{db: db} }

func (r *AdvertRepository) Create(ctx context.Context, a *advertDomain.Advert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdvertRepository) Save(ctx context.Context, a *advertDomain.Advert) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AdvertRepository) GetByAdvertID(ctx context.Context, advertID string) (*advertDomain.Advert, error) {
	var out advertDomain.Advert
	res := r.db.WithContext(ctx).Where("advert_id = ?", advertID).First(&out)
	return &out, res.Error
}

// GetByAdvertIDForUpdate takes a row lock; call it inside a transaction.
func (r *AdvertRepository) GetByAdvertIDForUpdate(ctx context.Context, advertID string) (*advertDomain.Advert, error) {
	var out advertDomain.Advert
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("advert_id = ?", advertID).
		First(&out)
	return &out, res.Error
}

func (r *AdvertRepository) List(ctx context.Context, status advertDomain.Status, page pagination.Request) ([]advertDomain.Advert, int64, error) {
	q := r.db.WithContext(ctx).Model(&advertDomain.Advert{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := advertSortColumns[page.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if page.SortDir == "desc" {
		dir = "DESC"
	}

	var out []advertDomain.Advert
	err := q.Order(col + " " + dir).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&out).Error
	return out, total, err
}
