package device

import "errors"

// Device domain errors
var (
	ErrDeviceNotFound          = errors.New("device not found")
	ErrDeviceAlreadyRegistered = errors.New("device with this serial number is already registered")
)
