package device

import (
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/validator"
)

// RegisterDeviceRequest registers a terminal by address. The backend probes
// the terminal through the gateway and stores whatever identity it reports.
type RegisterDeviceRequest struct {
	IP          string  `json:"ip"`
	Port        int     `json:"port"`
	Description *string `json:"description"`
}

func (r *RegisterDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IP) {
		errs = append(errs, validator.ValidationError{
			Field:   "ip",
			Message: "ip is required",
		})
	}

	if r.Port == 0 {
		r.Port = 4370
	}
	if r.Port < 1 || r.Port > 65535 {
		errs = append(errs, validator.ValidationError{
			Field:   "port",
			Message: "port must be between 1 and 65535",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDeviceRequest struct {
	IP          string  `json:"ip"`
	Port        int     `json:"port"`
	Description *string `json:"description"`
}

func (r *UpdateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.IP) {
		errs = append(errs, validator.ValidationError{
			Field:   "ip",
			Message: "ip is required",
		})
	}

	if r.Port < 1 || r.Port > 65535 {
		errs = append(errs, validator.ValidationError{
			Field:   "port",
			Message: "port must be between 1 and 65535",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeviceResponse struct {
	ID              int64   `json:"id"`
	IP              string  `json:"ip"`
	Port            int     `json:"port"`
	Description     *string `json:"description"`
	DeviceVersion   *string `json:"device_version"`
	DeviceOSVersion *string `json:"device_os_version"`
	Platform        *string `json:"platform"`
	FirmwareVersion *string `json:"firmware_version"`
	WorkCode        *string `json:"work_code"`
	SerialNumber    string  `json:"serial_number"`
	DeviceName      *string `json:"device_name"`
}

func ToResponse(d Device) DeviceResponse {
	return DeviceResponse{
		ID:              d.ID,
		IP:              d.IP,
		Port:            d.Port,
		Description:     d.Description,
		DeviceVersion:   d.DeviceVersion,
		DeviceOSVersion: d.DeviceOSVersion,
		Platform:        d.Platform,
		FirmwareVersion: d.FirmwareVersion,
		WorkCode:        d.WorkCode,
		SerialNumber:    d.SerialNumber,
		DeviceName:      d.DeviceName,
	}
}
