package notification

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusFailed   Status = "FAILED"
	StatusSent     Status = "SENT"
	StatusRetrying Status = "RETRYING"
)

var ErrInvalidStatus = errors.New("unknown notification status")

func Statuses() []Status {
	return []Status{StatusPending, StatusFailed, StatusSent, StatusRetrying}
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if Status(s) == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Log is one delivery attempt record. The log is append-only and transitions
// happen server-side; this surface only reads it.
type Log struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LogID     string    `gorm:"column:log_id;type:char(36);not null;uniqueIndex" json:"log_id"`
	Channel   string    `gorm:"column:channel;size:32;not null" json:"channel"`
	Recipient string    `gorm:"column:recipient;size:160;not null" json:"recipient"`
	Subject   string    `gorm:"column:subject;size:200" json:"subject"`
	Status    Status    `gorm:"column:status;type:enum('PENDING','FAILED','SENT','RETRYING');default:'PENDING';index" json:"status"`
	Attempts  int       `gorm:"column:attempts;not null;default:0" json:"attempts"`
	LastError string    `gorm:"column:last_error;type:text" json:"last_error,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Log) TableName() string { return "notification_logs" }
