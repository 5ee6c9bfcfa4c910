package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/domain/employee"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// InsertIfAbsent implements punch.PunchRepository. The unique constraint on
// (device_id, uid, recorded_at) makes concurrent duplicate inserts collapse
// into a no-op rather than an error.
func (r *punchRepository) InsertIfAbsent(ctx context.Context, p punch.Punch) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (device_id, uid, recorded_at)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT punches_device_uid_recorded_at_key DO NOTHING
	`

	tag, err := q.Exec(ctx, query, p.DeviceID, p.UID.String(), p.RecordedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert punch: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// LastRecordedAt implements punch.PunchRepository.
func (r *punchRepository) LastRecordedAt(ctx context.Context, deviceID int64) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT MAX(recorded_at) FROM punches WHERE device_id = $1`

	var last *time.Time
	if err := q.QueryRow(ctx, query, deviceID).Scan(&last); err != nil {
		return nil, fmt.Errorf("failed to get last recorded_at: %w", err)
	}

	return last, nil
}

// ListByDeviceRange implements punch.PunchRepository.
func (r *punchRepository) ListByDeviceRange(ctx context.Context, deviceID int64, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, device_id, uid, recorded_at, created_at
		FROM punches
		WHERE device_id = $1
		  AND recorded_at >= $2
		  AND recorded_at <= $3
		ORDER BY recorded_at ASC
	`

	rows, err := q.Query(ctx, query, deviceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by device: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListByUIDRange implements punch.PunchRepository.
func (r *punchRepository) ListByUIDRange(ctx context.Context, uid employee.CheckerUID, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, device_id, uid, recorded_at, created_at
		FROM punches
		WHERE uid = $1
		  AND recorded_at >= $2
		  AND recorded_at <= $3
		ORDER BY recorded_at ASC
	`

	rows, err := q.Query(ctx, query, uid.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by uid: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter punch.Filter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.DeviceID != nil {
		conditions = append(conditions, fmt.Sprintf("device_id = $%d", argIdx))
		args = append(args, *filter.DeviceID)
		argIdx++
	}
	if filter.UID != "" {
		conditions = append(conditions, fmt.Sprintf("uid = $%d", argIdx))
		args = append(args, filter.UID)
		argIdx++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("recorded_at >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("recorded_at <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM punches WHERE %s", where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	if filter.PerPage <= 0 {
		filter.PerPage = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.PerPage

	query := fmt.Sprintf(`
		SELECT id, device_id, uid, recorded_at, created_at
		FROM punches
		WHERE %s
		ORDER BY recorded_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	punches, err := scanPunches(rows)
	if err != nil {
		return nil, 0, err
	}

	return punches, total, nil
}

// Stats implements punch.PunchRepository.
func (r *punchRepository) Stats(ctx context.Context) (punch.Stats, error) {
	q := GetQuerier(ctx, r.db)

	var stats punch.Stats

	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM punches`).Scan(&stats.TotalRecords); err != nil {
		return punch.Stats{}, fmt.Errorf("failed to count punches: %w", err)
	}

	deviceQuery := `
		SELECT device_id, COUNT(*), MAX(recorded_at)
		FROM punches
		GROUP BY device_id
		ORDER BY device_id
	`
	rows, err := q.Query(ctx, deviceQuery)
	if err != nil {
		return punch.Stats{}, fmt.Errorf("failed to aggregate punches by device: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc punch.DeviceCount
		if err := rows.Scan(&dc.DeviceID, &dc.Count, &dc.LastRecordedAt); err != nil {
			return punch.Stats{}, fmt.Errorf("failed to scan device count: %w", err)
		}
		stats.ByDevice = append(stats.ByDevice, dc)
	}
	if err := rows.Err(); err != nil {
		return punch.Stats{}, fmt.Errorf("failed to read device counts: %w", err)
	}

	dayQuery := `
		SELECT to_char(recorded_at::date, 'YYYY-MM-DD'), COUNT(*)
		FROM punches
		GROUP BY recorded_at::date
		ORDER BY recorded_at::date DESC
		LIMIT 30
	`
	dayRows, err := q.Query(ctx, dayQuery)
	if err != nil {
		return punch.Stats{}, fmt.Errorf("failed to aggregate punches by day: %w", err)
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var dc punch.DayCount
		if err := dayRows.Scan(&dc.Date, &dc.Count); err != nil {
			return punch.Stats{}, fmt.Errorf("failed to scan day count: %w", err)
		}
		stats.ByDay = append(stats.ByDay, dc)
	}
	if err := dayRows.Err(); err != nil {
		return punch.Stats{}, fmt.Errorf("failed to read day counts: %w", err)
	}

	return stats, nil
}

func scanPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(&p.ID, &p.DeviceID, &p.UID, &p.RecordedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punches: %w", err)
	}
	return punches, nil
}
