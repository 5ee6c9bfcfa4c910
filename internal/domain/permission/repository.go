package permission

import (
	"context"
	"time"
)

// PermissionRepository defines data access methods for approved leave.
type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)

	GetByID(ctx context.Context, id int64) (Permission, error)

	Update(ctx context.Context, p Permission) error

	Delete(ctx context.Context, id int64) error

	// List retrieves permissions matching the filter, ordered by date.
	List(ctx context.Context, filter Filter) ([]Permission, int64, error)

	// ListByDateRange returns every permission with date in [from, to],
	// ordered by date then id. The calendar snapshot is built from this.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Permission, error)
}
