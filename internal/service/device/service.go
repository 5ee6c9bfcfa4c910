package device

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
)

type DeviceServiceImpl struct {
	gateway zkteco.Client
	device.DeviceRepository
}

func NewDeviceService(gateway zkteco.Client, deviceRepo device.DeviceRepository) device.DeviceService {
	return &DeviceServiceImpl{
		gateway:          gateway,
		DeviceRepository: deviceRepo,
	}
}

// Register implements device.DeviceService. The terminal must be reachable
// at registration time; its reported serial number is the identity under
// which it is stored.
func (s *DeviceServiceImpl) Register(ctx context.Context, req device.RegisterDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	info, err := s.gateway.FetchInfo(ctx, req.IP, req.Port)
	if err != nil {
		return device.DeviceResponse{}, fmt.Errorf("probe device at %s:%d: %w", req.IP, req.Port, err)
	}

	existing, err := s.DeviceRepository.GetBySerialNumber(ctx, info.SerialNumber)
	if err != nil {
		return device.DeviceResponse{}, err
	}
	if existing != nil {
		return device.DeviceResponse{}, device.ErrDeviceAlreadyRegistered
	}

	dev := device.Device{
		IP:          req.IP,
		Port:        req.Port,
		Description: req.Description,
	}
	applyInfo(&dev, info)

	created, err := s.DeviceRepository.Create(ctx, dev)
	if err != nil {
		return device.DeviceResponse{}, err
	}

	slog.Info("device registered", "device_id", created.ID, "serial_number", created.SerialNumber)

	return device.ToResponse(created), nil
}

// GetDevice implements device.DeviceService.
func (s *DeviceServiceImpl) GetDevice(ctx context.Context, id int64) (device.DeviceResponse, error) {
	dev, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}
	return device.ToResponse(dev), nil
}

// ListDevices implements device.DeviceService.
func (s *DeviceServiceImpl) ListDevices(ctx context.Context) ([]device.DeviceResponse, error) {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]device.DeviceResponse, 0, len(devices))
	for _, dev := range devices {
		responses = append(responses, device.ToResponse(dev))
	}
	return responses, nil
}

// UpdateDevice implements device.DeviceService.
func (s *DeviceServiceImpl) UpdateDevice(ctx context.Context, id int64, req device.UpdateDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	dev, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}

	dev.IP = req.IP
	dev.Port = req.Port
	dev.Description = req.Description

	if err := s.DeviceRepository.Update(ctx, dev); err != nil {
		return device.DeviceResponse{}, err
	}

	return device.ToResponse(dev), nil
}

// DeleteDevice implements device.DeviceService.
func (s *DeviceServiceImpl) DeleteDevice(ctx context.Context, id int64) error {
	return s.DeviceRepository.Delete(ctx, id)
}

// RefreshInfo implements device.DeviceService.
func (s *DeviceServiceImpl) RefreshInfo(ctx context.Context, id int64) (device.DeviceResponse, error) {
	dev, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}

	info, err := s.gateway.FetchInfo(ctx, dev.IP, dev.Port)
	if err != nil {
		return device.DeviceResponse{}, fmt.Errorf("probe device %d: %w", id, err)
	}

	applyInfo(&dev, info)

	if err := s.DeviceRepository.Update(ctx, dev); err != nil {
		return device.DeviceResponse{}, err
	}

	return device.ToResponse(dev), nil
}

// ListDeviceUsers implements device.DeviceService.
func (s *DeviceServiceImpl) ListDeviceUsers(ctx context.Context, id int64) ([]zkteco.DeviceUser, error) {
	dev, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	users, err := s.gateway.FetchUsers(ctx, dev.IP, dev.Port)
	if err != nil {
		return nil, fmt.Errorf("fetch users from device %d: %w", id, err)
	}
	return users, nil
}

// FetchRawLogs implements device.DeviceService.
func (s *DeviceServiceImpl) FetchRawLogs(ctx context.Context, id int64) ([]zkteco.AttendanceLog, error) {
	dev, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logs, err := s.gateway.FetchLogs(ctx, dev.IP, dev.Port)
	if err != nil {
		return nil, fmt.Errorf("fetch logs from device %d: %w", id, err)
	}
	return logs, nil
}

func applyInfo(dev *device.Device, info zkteco.DeviceInfo) {
	dev.SerialNumber = info.SerialNumber
	dev.DeviceVersion = strPtrOrNil(info.DeviceVersion)
	dev.DeviceOSVersion = strPtrOrNil(info.DeviceOSVersion)
	dev.Platform = strPtrOrNil(info.Platform)
	dev.FirmwareVersion = strPtrOrNil(info.FirmwareVersion)
	dev.WorkCode = strPtrOrNil(info.WorkCode)
	dev.DeviceName = strPtrOrNil(info.DeviceName)
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
