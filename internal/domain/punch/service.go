package punch

import (
	"context"
)

// PunchService exposes read access over the punch store.
type PunchService interface {
	ListPunches(ctx context.Context, req ListPunchesRequest) (ListPunchesResponse, error)

	GetStats(ctx context.Context) (Stats, error)

	// ExportCSV renders the punches matching the filter as CSV, one row
	// per punch.
	ExportCSV(ctx context.Context, req ListPunchesRequest) ([]byte, error)
}

// SyncService pulls fresh punches from terminals into the store.
type SyncService interface {
	// SyncDevice fetches the device's log through the gateway and merges
	// it into the store inside one transaction. Re-running with the same
	// batch yields zero new records.
	SyncDevice(ctx context.Context, deviceID int64) (SyncResult, error)

	// SyncAll runs SyncDevice over every registered device. One device
	// failing never aborts the others; each outcome is reported on its
	// own.
	SyncAll(ctx context.Context) (SyncAllResult, error)
}

type ListPunchesResponse struct {
	Punches []PunchResponse `json:"punches"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

// SyncResult reports one device's sync outcome.
type SyncResult struct {
	DeviceID             int64   `json:"device_id"`
	SerialNumber         string  `json:"serial_number"`
	NewRecordsCount      int     `json:"new_records_count"`
	SkippedMalformed     int     `json:"skipped_malformed"`
	LastRecordBeforeSync *string `json:"last_record_before_sync"`
	LastAddedRecord      *string `json:"last_added_record"`
}

// SyncOutcome is one entry of a sync-all fan-out; either Result or Error is
// set, never both.
type SyncOutcome struct {
	DeviceID int64       `json:"device_id"`
	Success  bool        `json:"success"`
	Result   *SyncResult `json:"result,omitempty"`
	Error    string      `json:"error,omitempty"`
}

type SyncAllResult struct {
	Devices         []SyncOutcome `json:"devices"`
	TotalNewRecords int           `json:"total_new_records"`
	SucceededCount  int           `json:"succeeded_count"`
	FailedCount     int           `json:"failed_count"`
}
