package device

import (
	"context"

	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
)

// DeviceService defines business logic for terminal management.
type DeviceService interface {
	// Register probes the terminal through the gateway and stores it under
	// the serial number it reports. Registering an already-known serial
	// fails with ErrDeviceAlreadyRegistered.
	Register(ctx context.Context, req RegisterDeviceRequest) (DeviceResponse, error)

	GetDevice(ctx context.Context, id int64) (DeviceResponse, error)

	ListDevices(ctx context.Context) ([]DeviceResponse, error)

	UpdateDevice(ctx context.Context, id int64, req UpdateDeviceRequest) (DeviceResponse, error)

	DeleteDevice(ctx context.Context, id int64) error

	// RefreshInfo re-probes the terminal and updates the stored identity
	// fields.
	RefreshInfo(ctx context.Context, id int64) (DeviceResponse, error)

	// ListDeviceUsers returns the accounts enrolled on the terminal itself.
	ListDeviceUsers(ctx context.Context, id int64) ([]zkteco.DeviceUser, error)

	// FetchRawLogs returns the terminal's attendance log as reported,
	// without touching the punch store.
	FetchRawLogs(ctx context.Context, id int64) ([]zkteco.AttendanceLog, error)
}
