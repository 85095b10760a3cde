package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type advertSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	AdvertID           string         `gorm:"column:advert_id;size:36"`
	ProductID          string         `gorm:"column:product_id;size:36"`
	ProductName        string         `gorm:"column:product_name"`
	RequesterID        string         `gorm:"column:requester_id;size:36"`
	RequesterName      string         `gorm:"column:requester_name"`
	Status             string         `gorm:"type:text;column:status"` // no enum
	DurationDays       int            `gorm:"column:duration_days"`
	Notes              string         `gorm:"column:notes"`
	StartDate          *time.Time     `gorm:"column:start_date"`
	EndDate            *time.Time     `gorm:"column:end_date"`
	ApprovedByName     string         `gorm:"column:approved_by_name"`
	ApprovedAt         *time.Time     `gorm:"column:approved_at"`
	RejectionReason    string         `gorm:"column:rejection_reason"`
	CancellationReason string         `gorm:"column:cancellation_reason"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (advertSQLite) TableName() string { return "adverts" }

type notificationLogSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	LogID     string    `gorm:"column:log_id;size:36"`
	Channel   string    `gorm:"column:channel"`
	Recipient string    `gorm:"column:recipient"`
	Subject   string    `gorm:"column:subject"`
	Status    string    `gorm:"type:text;column:status"` // no enum
	Attempts  int       `gorm:"column:attempts"`
	LastError string    `gorm:"column:last_error"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (notificationLogSQLite) TableName() string { return "notification_logs" }

type orderSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	OrderNumber string    `gorm:"column:order_number;uniqueIndex"`
	Status      string    `gorm:"column:status"`
	LastSyncAt  time.Time `gorm:"column:last_sync_at"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (orderSQLite) TableName() string { return "orders" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&advertSQLite{}, &notificationLogSQLite{}, &orderSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
