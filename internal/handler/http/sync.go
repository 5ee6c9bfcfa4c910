package http

import (
	"log/slog"
	"net/http"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/handler/http/response"
)

type SyncHandler interface {
	SyncDevice(w http.ResponseWriter, r *http.Request)
	SyncAll(w http.ResponseWriter, r *http.Request)
}

type SyncHandlerImpl struct {
	syncService punch.SyncService
}

func NewSyncHandler(syncService punch.SyncService) SyncHandler {
	return &SyncHandlerImpl{syncService: syncService}
}

// SyncDevice implements SyncHandler.
func (h *SyncHandlerImpl) SyncDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.syncService.SyncDevice(r.Context(), id)
	if err != nil {
		slog.Error("Sync device service error", "device_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device synchronized", result)
}

// SyncAll implements SyncHandler.
func (h *SyncHandlerImpl) SyncAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.SyncAll(r.Context())
	if err != nil {
		slog.Error("Sync all service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Synchronization finished", result)
}
