package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrSourceNotFound means the authoritative source has no such order.
	ErrSourceNotFound = errors.New("order not found at source")
)

// Order is the locally cached status view of a backend order. The status
// string is owned by the commerce backend; this service never invents states,
// it only reconciles the cache against the source.
type Order struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderNumber string    `gorm:"column:order_number;size:50;not null;uniqueIndex" json:"order_number"`
	Status      string    `gorm:"column:status;size:64;not null" json:"status"`
	LastSyncAt  time.Time `gorm:"column:last_sync_at" json:"last_sync_at"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
