package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/permission"
	"github.com/chronos-hr/attendance-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PermissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &PermissionHandlerImpl{permissionService: permissionService}
}

// Create implements PermissionHandler.
func (h *PermissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req permission.CreatePermissionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create permission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.permissionService.CreatePermission(r.Context(), req)
	if err != nil {
		slog.Error("Create permission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission created", result)
}

// BulkCreate implements PermissionHandler.
func (h *PermissionHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req permission.BulkCreatePermissionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk create permission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.permissionService.BulkCreate(r.Context(), req)
	if err != nil {
		slog.Error("Bulk create permission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permissions created", result)
}

// Get implements PermissionHandler.
func (h *PermissionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.permissionService.GetPermission(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PermissionHandler.
func (h *PermissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := permission.Filter{
		EmployeeID: queryInt64Ptr(r, "employee_id"),
		Type:       q.Get("type"),
		Page:       queryInt(r, "page", 1),
		PerPage:    queryInt(r, "per_page", 50),
	}

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		filter.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		filter.To = &t
	}

	result, err := h.permissionService.ListPermissions(r.Context(), filter)
	if err != nil {
		slog.Error("List permissions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.PerPage > 0 {
		totalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}
	response.SuccessWithMeta(w, result.Permissions, &response.Meta{
		Page:       result.Page,
		Limit:      result.PerPage,
		TotalItems: result.Total,
		TotalPages: totalPages,
	})
}

// Update implements PermissionHandler.
func (h *PermissionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req permission.UpdatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update permission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.permissionService.UpdatePermission(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission updated", result)
}

// Delete implements PermissionHandler.
func (h *PermissionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.permissionService.DeletePermission(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission deleted", nil)
}
