package notification

import (
	"context"

	"shopadmin-backend/pkg/pagination"
)

// Repository is read-only: delivery attempts are written by the notification
// workers, never by this surface.
type Repository interface {
	List(ctx context.Context, status Status, page pagination.Request) ([]Log, int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
