package punch

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
)

type PunchServiceImpl struct {
	punch.PunchRepository
}

func NewPunchService(punchRepo punch.PunchRepository) punch.PunchService {
	return &PunchServiceImpl{PunchRepository: punchRepo}
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, req punch.ListPunchesRequest) (punch.ListPunchesResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.ListPunchesResponse{}, err
	}

	filter, err := toFilter(req)
	if err != nil {
		return punch.ListPunchesResponse{}, err
	}

	punches, total, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return punch.ListPunchesResponse{}, err
	}

	resp := punch.ListPunchesResponse{
		Punches: make([]punch.PunchResponse, 0, len(punches)),
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	for _, p := range punches {
		resp.Punches = append(resp.Punches, punch.ToResponse(p))
	}
	return resp, nil
}

// GetStats implements punch.PunchService.
func (s *PunchServiceImpl) GetStats(ctx context.Context) (punch.Stats, error) {
	return s.PunchRepository.Stats(ctx)
}

// ExportCSV implements punch.PunchService. Pagination is ignored; the export
// covers everything the filter matches.
func (s *PunchServiceImpl) ExportCSV(ctx context.Context, req punch.ListPunchesRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter, err := toFilter(req)
	if err != nil {
		return nil, err
	}
	filter.Page = 1
	filter.PerPage = 1 << 20

	punches, _, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "device_id", "uid", "recorded_at"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range punches {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.DeviceID, 10),
			p.UID.String(),
			p.RecordedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func toFilter(req punch.ListPunchesRequest) (punch.Filter, error) {
	filter := punch.Filter{
		DeviceID: req.DeviceID,
		UID:      req.UID,
		Page:     req.Page,
		PerPage:  req.PerPage,
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}

	if req.From != "" {
		from, err := time.ParseInLocation(time.DateOnly, req.From, time.UTC)
		if err != nil {
			return punch.Filter{}, fmt.Errorf("parse from date: %w", err)
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.ParseInLocation(time.DateOnly, req.To, time.UTC)
		if err != nil {
			return punch.Filter{}, fmt.Errorf("parse to date: %w", err)
		}
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &end
	}

	return filter, nil
}
