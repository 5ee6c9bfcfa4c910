package punch

import (
	"context"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
)

// PunchRepository defines data access methods for punch records.
type PunchRepository interface {
	// InsertIfAbsent inserts a punch unless an identical
	// (device_id, uid, recorded_at) row already exists. It reports whether
	// a row was actually written; a duplicate is a no-op, never an error.
	InsertIfAbsent(ctx context.Context, p Punch) (bool, error)

	// LastRecordedAt returns the newest recorded_at for the device, or nil
	// when the device has no punches yet. This is the sync watermark.
	LastRecordedAt(ctx context.Context, deviceID int64) (*time.Time, error)

	// ListByDeviceRange returns the device's punches with recorded_at in
	// [from, to], ordered by recorded_at ascending.
	ListByDeviceRange(ctx context.Context, deviceID int64, from, to time.Time) ([]Punch, error)

	// ListByUIDRange returns the uid's punches across all devices with
	// recorded_at in [from, to], ordered by recorded_at ascending.
	ListByUIDRange(ctx context.Context, uid employee.CheckerUID, from, to time.Time) ([]Punch, error)

	// List retrieves punches matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]Punch, int64, error)

	// Stats aggregates per-device and per-day punch counts.
	Stats(ctx context.Context) (Stats, error)
}
