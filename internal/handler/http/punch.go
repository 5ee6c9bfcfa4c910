package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

func punchListRequest(r *http.Request) punch.ListPunchesRequest {
	q := r.URL.Query()
	return punch.ListPunchesRequest{
		DeviceID: queryInt64Ptr(r, "device_id"),
		UID:      q.Get("uid"),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Page:     queryInt(r, "page", 1),
		PerPage:  queryInt(r, "per_page", 50),
	}
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := punchListRequest(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.punchService.ListPunches(r.Context(), req)
	if err != nil {
		slog.Error("List punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.PerPage > 0 {
		totalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}
	response.SuccessWithMeta(w, result.Punches, &response.Meta{
		Page:       result.Page,
		Limit:      result.PerPage,
		TotalItems: result.Total,
		TotalPages: totalPages,
	})
}

// Stats implements PunchHandler.
func (h *PunchHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.punchService.GetStats(r.Context())
	if err != nil {
		slog.Error("Punch stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements PunchHandler.
func (h *PunchHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := punchListRequest(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	body, err := h.punchService.ExportCSV(r.Context(), req)
	if err != nil {
		slog.Error("Export punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "punches-" + time.Now().Format("20060102-150405") + ".csv"
	response.Attachment(w, filename, "text/csv", body)
}
