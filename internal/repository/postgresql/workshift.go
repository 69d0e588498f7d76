package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nivel36/janus/internal/domain/shift"
	"github.com/nivel36/janus/internal/domain/timelog"
	"github.com/nivel36/janus/internal/pkg/database"
)

type workShiftRepository struct {
	db *database.DB
}

func NewWorkShiftRepository(db *database.DB) shift.WorkShiftRepository {
	return &workShiftRepository{db: db}
}

// Save implements shift.WorkShiftRepository. The shift row and the
// linkage of its time logs are written in one transaction, so a rerun of
// the batch never sees a half-materialized day.
func (r *workShiftRepository) Save(ctx context.Context, ws shift.WorkShift) (shift.WorkShift, error) {
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO work_shifts (
				id, employee_id, worksite_id, date, work_minutes, pause_minutes
			) VALUES (
				$1, $2, $3, $4, $5, $6
			)
			ON CONFLICT (employee_id, date) DO UPDATE SET
				worksite_id = EXCLUDED.worksite_id,
				work_minutes = EXCLUDED.work_minutes,
				pause_minutes = EXCLUDED.pause_minutes,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`

		err := q.QueryRow(txCtx, query,
			ws.ID,
			ws.EmployeeID,
			ws.WorksiteID,
			ws.Date,
			int(ws.WorkDuration.Minutes()),
			int(ws.PauseDuration.Minutes()),
		).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert work shift: %w", err)
		}

		if ws.Logs.IsEmpty() {
			return nil
		}

		logIDs := make([]string, 0, ws.Logs.Len())
		for _, lg := range ws.Logs.Logs() {
			logIDs = append(logIDs, lg.ID)
		}

		linkQuery := `
			UPDATE time_logs
			SET work_shift_id = $1, updated_at = NOW()
			WHERE id = ANY($2)
		`
		if _, err := q.Exec(txCtx, linkQuery, ws.ID, logIDs); err != nil {
			return fmt.Errorf("failed to link time logs: %w", err)
		}

		return nil
	})
	if err != nil {
		return shift.WorkShift{}, err
	}

	return ws, nil
}

// ExistsByEmployeeAndDate implements shift.WorkShiftRepository.
func (r *workShiftRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM work_shifts
			WHERE employee_id = $1 AND date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check work shift existence: %w", err)
	}
	return exists, nil
}

// FindByEmployeeAndDate implements shift.WorkShiftRepository.
func (r *workShiftRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (shift.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, worksite_id, date, work_minutes, pause_minutes,
		       created_at, updated_at
		FROM work_shifts
		WHERE employee_id = $1 AND date = $2
	`

	var ws shift.WorkShift
	var workMinutes, pauseMinutes int
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&ws.ID, &ws.EmployeeID, &ws.WorksiteID, &ws.Date,
		&workMinutes, &pauseMinutes,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.WorkShift{}, shift.ErrWorkShiftNotFound
		}
		return shift.WorkShift{}, fmt.Errorf("failed to get work shift: %w", err)
	}
	ws.WorkDuration = time.Duration(workMinutes) * time.Minute
	ws.PauseDuration = time.Duration(pauseMinutes) * time.Minute

	logsQuery := `
		SELECT ` + timeLogColumns + `
		FROM time_logs
		WHERE work_shift_id = $1
		ORDER BY entry_time ASC
	`
	rows, err := q.Query(ctx, logsQuery, ws.ID)
	if err != nil {
		return shift.WorkShift{}, fmt.Errorf("failed to query shift logs: %w", err)
	}
	defer rows.Close()

	raw, err := scanTimeLogs(rows)
	if err != nil {
		return shift.WorkShift{}, err
	}

	logs, err := timelog.NewTimeLogs(raw)
	if err != nil {
		return shift.WorkShift{}, fmt.Errorf("failed to validate shift logs: %w", err)
	}
	ws.Logs = logs

	return ws, nil
}
