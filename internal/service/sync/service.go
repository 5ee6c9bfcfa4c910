package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
)

const timestampLayout = "2006-01-02 15:04:05"

type SyncServiceImpl struct {
	tx      database.TxManager
	gateway zkteco.Client
	punch.PunchRepository
	device.DeviceRepository
}

func NewSyncService(
	tx database.TxManager,
	gateway zkteco.Client,
	punchRepo punch.PunchRepository,
	deviceRepo device.DeviceRepository,
) punch.SyncService {
	return &SyncServiceImpl{
		tx:               tx,
		gateway:          gateway,
		PunchRepository:  punchRepo,
		DeviceRepository: deviceRepo,
	}
}

// SyncDevice implements punch.SyncService. The fetched batch is merged in
// one transaction: punches at or before the watermark are skipped, exact
// duplicates are no-ops, and any failure rolls the whole batch back so the
// watermark never moves past data that was not durably stored.
func (s *SyncServiceImpl) SyncDevice(ctx context.Context, deviceID int64) (punch.SyncResult, error) {
	dev, err := s.DeviceRepository.GetByID(ctx, deviceID)
	if err != nil {
		return punch.SyncResult{}, err
	}

	logs, err := s.gateway.FetchLogs(ctx, dev.IP, dev.Port)
	if err != nil {
		return punch.SyncResult{}, fmt.Errorf("fetch logs from device %d: %w", deviceID, err)
	}

	watermark, err := s.PunchRepository.LastRecordedAt(ctx, deviceID)
	if err != nil {
		return punch.SyncResult{}, err
	}

	result := punch.SyncResult{
		DeviceID:     dev.ID,
		SerialNumber: dev.SerialNumber,
	}
	if watermark != nil {
		v := watermark.Format(timestampLayout)
		result.LastRecordBeforeSync = &v
	}

	candidates := make([]punch.Punch, 0, len(logs))
	for _, l := range logs {
		ts, err := parseTimestamp(l.Timestamp)
		if err != nil {
			result.SkippedMalformed++
			slog.Warn("skipping malformed punch record",
				"device_id", deviceID,
				"uid", l.UID,
				"timestamp", l.Timestamp,
			)
			continue
		}
		if watermark != nil && !ts.After(*watermark) {
			continue
		}
		candidates = append(candidates, punch.Punch{
			DeviceID:   deviceID,
			UID:        employee.CheckerUID(l.UID),
			RecordedAt: ts,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RecordedAt.Before(candidates[j].RecordedAt)
	})

	var lastAdded *time.Time
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range candidates {
			inserted, err := s.PunchRepository.InsertIfAbsent(txCtx, c)
			if err != nil {
				return err
			}
			if inserted {
				result.NewRecordsCount++
				ts := c.RecordedAt
				lastAdded = &ts
			}
		}
		return nil
	})
	if err != nil {
		return punch.SyncResult{}, fmt.Errorf("sync device %d: %w", deviceID, err)
	}

	if lastAdded != nil {
		v := lastAdded.Format(timestampLayout)
		result.LastAddedRecord = &v
	}

	slog.Info("device synced",
		"device_id", deviceID,
		"new_records", result.NewRecordsCount,
		"skipped_malformed", result.SkippedMalformed,
	)

	return result, nil
}

// SyncAll implements punch.SyncService. Devices are synced sequentially and
// independently; a failing device is reported in its outcome and the fan-out
// moves on.
func (s *SyncServiceImpl) SyncAll(ctx context.Context) (punch.SyncAllResult, error) {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return punch.SyncAllResult{}, err
	}

	result := punch.SyncAllResult{Devices: []punch.SyncOutcome{}}
	for _, dev := range devices {
		outcome := punch.SyncOutcome{DeviceID: dev.ID}

		res, err := s.SyncDevice(ctx, dev.ID)
		if err != nil {
			outcome.Error = err.Error()
			result.FailedCount++
			slog.Error("device sync failed", "device_id", dev.ID, "error", err)
		} else {
			outcome.Success = true
			outcome.Result = &res
			result.SucceededCount++
			result.TotalNewRecords += res.NewRecordsCount
		}

		result.Devices = append(result.Devices, outcome)
	}

	return result, nil
}

func parseTimestamp(v string) (time.Time, error) {
	if ts, err := time.ParseInLocation(timestampLayout, v, time.UTC); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, v)
}
