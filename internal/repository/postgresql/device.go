package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type deviceRepository struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}

// Create implements device.DeviceRepository.
func (r *deviceRepository) Create(ctx context.Context, dev device.Device) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (
			ip, port, description, device_version, device_os_version,
			platform, firmware_version, work_code, serial_number, device_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		dev.IP,
		dev.Port,
		dev.Description,
		dev.DeviceVersion,
		dev.DeviceOSVersion,
		dev.Platform,
		dev.FirmwareVersion,
		dev.WorkCode,
		dev.SerialNumber,
		dev.DeviceName,
	).Scan(&dev.ID, &dev.CreatedAt, &dev.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return device.Device{}, device.ErrDeviceAlreadyRegistered
		}
		return device.Device{}, fmt.Errorf("failed to create device: %w", err)
	}

	return dev, nil
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepository) GetByID(ctx context.Context, id int64) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ip, port, description, device_version, device_os_version,
			   platform, firmware_version, work_code, serial_number, device_name,
			   created_at, updated_at
		FROM devices
		WHERE id = $1
	`

	var dev device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&dev.ID, &dev.IP, &dev.Port, &dev.Description, &dev.DeviceVersion, &dev.DeviceOSVersion,
		&dev.Platform, &dev.FirmwareVersion, &dev.WorkCode, &dev.SerialNumber, &dev.DeviceName,
		&dev.CreatedAt, &dev.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	return dev, nil
}

// GetBySerialNumber implements device.DeviceRepository.
func (r *deviceRepository) GetBySerialNumber(ctx context.Context, serial string) (*device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ip, port, description, device_version, device_os_version,
			   platform, firmware_version, work_code, serial_number, device_name,
			   created_at, updated_at
		FROM devices
		WHERE serial_number = $1
	`

	var dev device.Device
	err := q.QueryRow(ctx, query, serial).Scan(
		&dev.ID, &dev.IP, &dev.Port, &dev.Description, &dev.DeviceVersion, &dev.DeviceOSVersion,
		&dev.Platform, &dev.FirmwareVersion, &dev.WorkCode, &dev.SerialNumber, &dev.DeviceName,
		&dev.CreatedAt, &dev.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device by serial: %w", err)
	}

	return &dev, nil
}

// Update implements device.DeviceRepository.
func (r *deviceRepository) Update(ctx context.Context, dev device.Device) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE devices
		SET ip = $1, port = $2, description = $3, device_version = $4,
			device_os_version = $5, platform = $6, firmware_version = $7,
			work_code = $8, device_name = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		dev.IP, dev.Port, dev.Description, dev.DeviceVersion,
		dev.DeviceOSVersion, dev.Platform, dev.FirmwareVersion,
		dev.WorkCode, dev.DeviceName, dev.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}

// Delete implements device.DeviceRepository.
func (r *deviceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}

// List implements device.DeviceRepository.
func (r *deviceRepository) List(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, ip, port, description, device_version, device_os_version,
			   platform, firmware_version, work_code, serial_number, device_name,
			   created_at, updated_at
		FROM devices
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var dev device.Device
		if err := rows.Scan(
			&dev.ID, &dev.IP, &dev.Port, &dev.Description, &dev.DeviceVersion, &dev.DeviceOSVersion,
			&dev.Platform, &dev.FirmwareVersion, &dev.WorkCode, &dev.SerialNumber, &dev.DeviceName,
			&dev.CreatedAt, &dev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, dev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read devices: %w", err)
	}

	return devices, nil
}
