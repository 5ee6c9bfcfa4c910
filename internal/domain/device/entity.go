package device

import (
	"time"
)

type Device struct {
	ID              int64
	IP              string
	Port            int
	Description     *string
	DeviceVersion   *string
	DeviceOSVersion *string
	Platform        *string
	FirmwareVersion *string
	WorkCode        *string
	SerialNumber    string
	DeviceName      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
