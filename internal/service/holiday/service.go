package holiday

import (
	"context"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := fromRequest(req)
	created, err := s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created, created.Date.Year()), nil
}

// GetHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetHoliday(ctx context.Context, id int64) (holiday.HolidayResponse, error) {
	h, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(h, h.Date.Year()), nil
}

// ListHolidays implements holiday.HolidayService. One-off holidays outside
// the requested year are filtered out; recurring ones always appear, with
// their display date materialized into that year.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		if !h.IsRecurring && h.Date.Year() != year {
			continue
		}
		responses = append(responses, holiday.ToResponse(h, year))
	}
	return responses, nil
}

// UpdateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, id int64, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := fromRequest(req.CreateHolidayRequest)
	h.ID = existing.ID
	h.CreatedAt = existing.CreatedAt

	if err := s.HolidayRepository.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(h, h.Date.Year()), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id int64) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func fromRequest(req holiday.CreateHolidayRequest) holiday.Holiday {
	date, _ := time.ParseInLocation(time.DateOnly, req.Date, time.UTC)
	return holiday.Holiday{
		Date:           date,
		Description:    req.Description,
		IsRecurring:    req.IsRecurring,
		RecurringMonth: req.RecurringMonth,
		RecurringDay:   req.RecurringDay,
	}
}
