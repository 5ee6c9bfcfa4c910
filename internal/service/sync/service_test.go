package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
)

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type tripleKey struct {
	deviceID int64
	uid      employee.CheckerUID
	ts       time.Time
}

// memPunchStore enforces the (device, uid, recorded_at) uniqueness the real
// table provides.
type memPunchStore struct {
	punch.PunchRepository
	rows map[tripleKey]punch.Punch
}

func newMemPunchStore() *memPunchStore {
	return &memPunchStore{rows: make(map[tripleKey]punch.Punch)}
}

func (m *memPunchStore) InsertIfAbsent(_ context.Context, p punch.Punch) (bool, error) {
	k := tripleKey{deviceID: p.DeviceID, uid: p.UID, ts: p.RecordedAt}
	if _, exists := m.rows[k]; exists {
		return false, nil
	}
	m.rows[k] = p
	return true, nil
}

func (m *memPunchStore) LastRecordedAt(_ context.Context, deviceID int64) (*time.Time, error) {
	var last *time.Time
	for k := range m.rows {
		if k.deviceID != deviceID {
			continue
		}
		ts := k.ts
		if last == nil || ts.After(*last) {
			last = &ts
		}
	}
	return last, nil
}

type stubDeviceRepo struct {
	device.DeviceRepository
	devices []device.Device
}

func (s *stubDeviceRepo) GetByID(_ context.Context, id int64) (device.Device, error) {
	for _, d := range s.devices {
		if d.ID == id {
			return d, nil
		}
	}
	return device.Device{}, device.ErrDeviceNotFound
}

func (s *stubDeviceRepo) List(context.Context) ([]device.Device, error) {
	return s.devices, nil
}

// stubGateway returns canned logs per device ip.
type stubGateway struct {
	zkteco.Client
	logsByIP map[string][]zkteco.AttendanceLog
	errByIP  map[string]error
}

func (s *stubGateway) FetchLogs(_ context.Context, ip string, _ int) ([]zkteco.AttendanceLog, error) {
	if err := s.errByIP[ip]; err != nil {
		return nil, err
	}
	return s.logsByIP[ip], nil
}

func testDevices() []device.Device {
	return []device.Device{
		{ID: 1, IP: "10.0.0.1", Port: 4370, SerialNumber: "ZK-001"},
		{ID: 2, IP: "10.0.0.2", Port: 4370, SerialNumber: "ZK-002"},
	}
}

func TestSyncDeviceIdempotent(t *testing.T) {
	store := newMemPunchStore()
	gw := &stubGateway{logsByIP: map[string][]zkteco.AttendanceLog{
		"10.0.0.1": {
			{UID: "42", Timestamp: "2024-06-03 08:02:00"},
			{UID: "42", Timestamp: "2024-06-03 17:15:00"},
			{UID: "7", Timestamp: "2024-06-03 09:00:00"},
		},
	}}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	first, err := svc.SyncDevice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, first.NewRecordsCount)
	assert.Nil(t, first.LastRecordBeforeSync)
	require.NotNil(t, first.LastAddedRecord)
	assert.Equal(t, "2024-06-03 17:15:00", *first.LastAddedRecord)

	// Same batch again: nothing new, store unchanged.
	second, err := svc.SyncDevice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, second.NewRecordsCount)
	require.NotNil(t, second.LastRecordBeforeSync)
	assert.Equal(t, "2024-06-03 17:15:00", *second.LastRecordBeforeSync)
	assert.Nil(t, second.LastAddedRecord)
	assert.Len(t, store.rows, 3)
}

func TestSyncDeviceWatermarkSkipsOlder(t *testing.T) {
	store := newMemPunchStore()
	gw := &stubGateway{logsByIP: map[string][]zkteco.AttendanceLog{
		"10.0.0.1": {
			{UID: "42", Timestamp: "2024-06-03 17:15:00"},
		},
	}}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	_, err := svc.SyncDevice(context.Background(), 1)
	require.NoError(t, err)

	// A later batch holding only older timestamps contributes nothing,
	// even for uids the store has never seen.
	gw.logsByIP["10.0.0.1"] = []zkteco.AttendanceLog{
		{UID: "42", Timestamp: "2024-06-03 08:02:00"},
		{UID: "99", Timestamp: "2024-06-02 10:00:00"},
		{UID: "42", Timestamp: "2024-06-03 17:15:00"},
	}

	res, err := svc.SyncDevice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewRecordsCount)
	assert.Len(t, store.rows, 1)
}

func TestSyncDeviceDuplicateInBatch(t *testing.T) {
	store := newMemPunchStore()
	gw := &stubGateway{logsByIP: map[string][]zkteco.AttendanceLog{
		"10.0.0.1": {
			{UID: "7", Timestamp: "2024-06-01 08:00:00"},
			{UID: "7", Timestamp: "2024-06-01 08:00:00"},
		},
	}}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	res, err := svc.SyncDevice(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NewRecordsCount)
	assert.Len(t, store.rows, 1)
}

func TestSyncDeviceMalformedRecordsSkipped(t *testing.T) {
	store := newMemPunchStore()
	gw := &stubGateway{logsByIP: map[string][]zkteco.AttendanceLog{
		"10.0.0.1": {
			{UID: "42", Timestamp: "not-a-timestamp"},
			{UID: "42", Timestamp: "2024-06-03 08:02:00"},
			{UID: "42", Timestamp: ""},
		},
	}}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	res, err := svc.SyncDevice(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NewRecordsCount)
	assert.Equal(t, 2, res.SkippedMalformed)
}

func TestSyncDeviceUnavailable(t *testing.T) {
	store := newMemPunchStore()
	gw := &stubGateway{errByIP: map[string]error{
		"10.0.0.1": zkteco.ErrDeviceUnavailable,
	}}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	_, err := svc.SyncDevice(context.Background(), 1)
	assert.ErrorIs(t, err, zkteco.ErrDeviceUnavailable)
	assert.Empty(t, store.rows)
}

func TestSyncDeviceUnknownDevice(t *testing.T) {
	svc := NewSyncService(passthroughTx{}, &stubGateway{}, newMemPunchStore(), &stubDeviceRepo{devices: testDevices()})

	_, err := svc.SyncDevice(context.Background(), 99)
	assert.ErrorIs(t, err, device.ErrDeviceNotFound)
}

func TestSyncAllToleratesPartialFailure(t *testing.T) {
	store := newMemPunchStore()
	gw := &stubGateway{
		logsByIP: map[string][]zkteco.AttendanceLog{
			"10.0.0.2": {
				{UID: "42", Timestamp: "2024-06-03 08:02:00"},
				{UID: "42", Timestamp: "2024-06-03 17:15:00"},
			},
		},
		errByIP: map[string]error{
			"10.0.0.1": zkteco.ErrDeviceUnavailable,
		},
	}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	res, err := svc.SyncAll(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Devices, 2)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, 1, res.SucceededCount)
	assert.Equal(t, 2, res.TotalNewRecords)

	assert.False(t, res.Devices[0].Success)
	assert.Contains(t, res.Devices[0].Error, "device unavailable")
	assert.Nil(t, res.Devices[0].Result)

	assert.True(t, res.Devices[1].Success)
	require.NotNil(t, res.Devices[1].Result)
	assert.Equal(t, 2, res.Devices[1].Result.NewRecordsCount)
}

func TestSyncDeviceRollbackOnFailure(t *testing.T) {
	// A mid-batch insert failure must surface and leave nothing committed;
	// the rollback itself is the transaction manager's job.
	store := &failingPunchStore{memPunchStore: newMemPunchStore(), failAfter: 1}
	gw := &stubGateway{logsByIP: map[string][]zkteco.AttendanceLog{
		"10.0.0.1": {
			{UID: "42", Timestamp: "2024-06-03 08:02:00"},
			{UID: "42", Timestamp: "2024-06-03 17:15:00"},
		},
	}}
	svc := NewSyncService(passthroughTx{}, gw, store, &stubDeviceRepo{devices: testDevices()})

	_, err := svc.SyncDevice(context.Background(), 1)
	assert.Error(t, err)
}

type failingPunchStore struct {
	*memPunchStore
	inserts   int
	failAfter int
}

func (f *failingPunchStore) InsertIfAbsent(ctx context.Context, p punch.Punch) (bool, error) {
	if f.inserts >= f.failAfter {
		return false, errors.New("connection reset")
	}
	f.inserts++
	return f.memPunchStore.InsertIfAbsent(ctx, p)
}
