package device

import (
	"context"
)

// DeviceRepository defines data access methods for registered terminals.
type DeviceRepository interface {
	Create(ctx context.Context, dev Device) (Device, error)

	GetByID(ctx context.Context, id int64) (Device, error)

	GetBySerialNumber(ctx context.Context, serial string) (*Device, error)

	Update(ctx context.Context, dev Device) error

	Delete(ctx context.Context, id int64) error

	// List returns all registered devices ordered by id.
	List(ctx context.Context) ([]Device, error)
}
