package notification

import (
	"context"
	"time"

	domain "shopadmin-backend/internal/domain/notification"
	"shopadmin-backend/pkg/pagination"
)

var listDefaults = pagination.Defaults{PageSize: 20, SortBy: "createdAt", SortDir: "desc"}

var sortableFields = []string{"createdAt", "status", "channel", "attempts"}

type LogDTO struct {
	LogID     string    `json:"logId"`
	Channel   string    `json:"channel"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject,omitempty"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary aggregates the delivery log by status.
type Summary struct {
	TotalLogs     int64            `json:"totalLogs"`
	CountByStatus map[string]int64 `json:"countByStatus"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

// Usecase is the read-only inspection surface over the delivery log.
type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) List(ctx context.Context, statusFilter string, page pagination.Request) (*pagination.Response[LogDTO], error) {
	page = page.Normalize(listDefaults)
	if verr := page.Validate(sortableFields...); verr != nil {
		return nil, verr
	}

	var status domain.Status
	if statusFilter != "" {
		st, err := domain.ParseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = st
	}

	logs, total, err := u.repo.List(ctx, status, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]LogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, LogDTO{
			LogID:     l.LogID,
			Channel:   l.Channel,
			Recipient: l.Recipient,
			Subject:   l.Subject,
			Status:    string(l.Status),
			Attempts:  l.Attempts,
			LastError: l.LastError,
			CreatedAt: l.CreatedAt,
		})
	}
	resp := pagination.NewResponse(dtos, page, total)
	return &resp, nil
}

// GetSummary is a read-only aggregate over the log; no side effects.
func (u *Usecase) GetSummary(ctx context.Context) (*Summary, error) {
	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	out := make(map[string]int64, len(counts))
	for st, n := range counts {
		out[string(st)] = n
		total += n
	}
	return &Summary{TotalLogs: total, CountByStatus: out, GeneratedAt: u.now()}, nil
}
