package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/device"
	"github.com/chronos-hr/attendance-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	RefreshInfo(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	RawLogs(w http.ResponseWriter, r *http.Request)
}

type DeviceHandlerImpl struct {
	deviceService device.DeviceService
}

func NewDeviceHandler(deviceService device.DeviceService) DeviceHandler {
	return &DeviceHandlerImpl{deviceService: deviceService}
}

// Register implements DeviceHandler.
func (h *DeviceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req device.RegisterDeviceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register device decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.deviceService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register device service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device registered", result)
}

// Get implements DeviceHandler.
func (h *DeviceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.deviceService.GetDevice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DeviceHandler.
func (h *DeviceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.deviceService.ListDevices(r.Context())
	if err != nil {
		slog.Error("List devices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements DeviceHandler.
func (h *DeviceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req device.UpdateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update device decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.deviceService.UpdateDevice(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device updated", result)
}

// Delete implements DeviceHandler.
func (h *DeviceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.deviceService.DeleteDevice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device deleted", nil)
}

// RefreshInfo implements DeviceHandler.
func (h *DeviceHandlerImpl) RefreshInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.deviceService.RefreshInfo(r.Context(), id)
	if err != nil {
		slog.Error("Refresh device info service error", "device_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device info refreshed", result)
}

// ListUsers implements DeviceHandler.
func (h *DeviceHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.deviceService.ListDeviceUsers(r.Context(), id)
	if err != nil {
		slog.Error("List device users service error", "device_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RawLogs implements DeviceHandler.
func (h *DeviceHandlerImpl) RawLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.deviceService.FetchRawLogs(r.Context(), id)
	if err != nil {
		slog.Error("Fetch raw logs service error", "device_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
