package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncService struct {
	result punch.SyncResult
	err    error
}

func (f *fakeSyncService) SyncDevice(ctx context.Context, deviceID int64) (punch.SyncResult, error) {
	if f.err != nil {
		return punch.SyncResult{}, f.err
	}
	result := f.result
	result.DeviceID = deviceID
	return result, nil
}

func (f *fakeSyncService) SyncAll(ctx context.Context) (punch.SyncAllResult, error) {
	panic("unexpected call")
}

func postSyncDevice(handler SyncHandler, id string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/devices/{id}/sync", handler.SyncDevice)

	req := httptest.NewRequest(http.MethodPost, "/devices/"+id+"/sync", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSyncHandler_SyncDevice_Success(t *testing.T) {
	handler := NewSyncHandler(&fakeSyncService{
		result: punch.SyncResult{SerialNumber: "ZK-001", NewRecordsCount: 7},
	})

	rec := postSyncDevice(handler, "3")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			DeviceID        int64  `json:"device_id"`
			SerialNumber    string `json:"serial_number"`
			NewRecordsCount int    `json:"new_records_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Data.DeviceID)
	assert.Equal(t, "ZK-001", resp.Data.SerialNumber)
	assert.Equal(t, 7, resp.Data.NewRecordsCount)
}

func TestSyncHandler_SyncDevice_Unavailable(t *testing.T) {
	handler := NewSyncHandler(&fakeSyncService{
		err: fmt.Errorf("fetch logs from device 3: %w", zkteco.ErrDeviceUnavailable),
	})

	rec := postSyncDevice(handler, "3")

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "DEVICE_UNAVAILABLE", resp.Error.Code)
}

func TestSyncHandler_SyncDevice_BadID(t *testing.T) {
	handler := NewSyncHandler(&fakeSyncService{})

	rec := postSyncDevice(handler, "abc")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
