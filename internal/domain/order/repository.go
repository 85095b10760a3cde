package order

import "context"

type Repository interface {
	// Upsert creates the cache row or updates status/last_sync_at by order number.
	Upsert(ctx context.Context, o *Order) error
	GetByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// Source is the authoritative commerce backend the sync coordinator
// reconciles against.
type Source interface {
	// FetchOrderStatus returns ErrSourceNotFound when the backend has no such order.
	FetchOrderStatus(ctx context.Context, orderNumber string) (string, error)
	FetchAllOrderStatuses(ctx context.Context) (map[string]string, error)
}
