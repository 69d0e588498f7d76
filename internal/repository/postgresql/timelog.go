package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nivel36/janus/internal/domain/timelog"
	"github.com/nivel36/janus/internal/pkg/database"
)

type timeLogRepository struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepository{db: db}
}

const timeLogColumns = `
	id, employee_id, worksite_id, entry_time, exit_time,
	deleted_at, created_at, updated_at
`

// FindClosedByEmployeeBetween implements timelog.TimeLogRepository.
func (r *timeLogRepository) FindClosedByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs
		WHERE employee_id = $1
		  AND exit_time IS NOT NULL
		  AND deleted_at IS NULL
		  AND entry_time >= $2
		  AND entry_time < $3
		ORDER BY entry_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query time logs: %w", err)
	}
	defer rows.Close()

	return scanTimeLogs(rows)
}

// FindOrphanEmployeeIDs implements timelog.TimeLogRepository.
func (r *timeLogRepository) FindOrphanEmployeeIDs(ctx context.Context, anchor time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM time_logs
		WHERE exit_time IS NOT NULL
		  AND deleted_at IS NULL
		  AND work_shift_id IS NULL
		  AND entry_time >= $1
	`

	rows, err := q.Query(ctx, query, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphan employee IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orphan employee IDs: %w", err)
	}

	return ids, nil
}

// FindOrphanByEmployee implements timelog.TimeLogRepository.
func (r *timeLogRepository) FindOrphanByEmployee(ctx context.Context, anchor time.Time, employeeID string) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeLogColumns + `
		FROM time_logs
		WHERE employee_id = $1
		  AND exit_time IS NOT NULL
		  AND deleted_at IS NULL
		  AND work_shift_id IS NULL
		  AND entry_time >= $2
		ORDER BY entry_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphan time logs: %w", err)
	}
	defer rows.Close()

	return scanTimeLogs(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTimeLogs(rows rowScanner) ([]timelog.TimeLog, error) {
	var logs []timelog.TimeLog
	for rows.Next() {
		var lg timelog.TimeLog
		if err := rows.Scan(
			&lg.ID, &lg.EmployeeID, &lg.WorksiteID, &lg.Entry, &lg.Exit,
			&lg.DeletedAt, &lg.CreatedAt, &lg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, lg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time logs: %w", err)
	}
	return logs, nil
}
