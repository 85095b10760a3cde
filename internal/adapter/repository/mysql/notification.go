package mysql

import (
	"context"

	notifDomain "shopadmin-backend/internal/domain/notification"
	"shopadmin-backend/pkg/pagination"

	"gorm.io/gorm"
)

var notifSortColumns = map[string]string{
	"createdAt": "created_at",
	"status":    "status",
	"channel":   "channel",
	"attempts":  "attempts",
}

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) List(ctx context.Context, status notifDomain.Status, page pagination.Request) ([]notifDomain.Log, int64, error) {
	q := r.db.WithContext(ctx).Model(&notifDomain.Log{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := notifSortColumns[page.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if page.SortDir == "desc" {
		dir = "DESC"
	}

	var out []notifDomain.Log
	err := q.Order(col + " " + dir).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&out).Error
	return out, total, err
}

func (r *NotificationRepository) CountByStatus(ctx context.Context) (map[notifDomain.Status]int64, error) {
	type row struct {
		Status notifDomain.Status
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&notifDomain.Log{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[notifDomain.Status]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.N
	}
	return out, nil
}
