package mysql

import (
	"context"
	"errors"

	orderDomain "shopadmin-backend/internal/domain/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Upsert(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "last_sync_at", "updated_at"}),
		}).
		Create(o).Error
}

func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, orderDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]orderDomain.Order, error) {
	var out []orderDomain.Order
	err := r.db.WithContext(ctx).Order("order_number ASC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&orderDomain.Order{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}
