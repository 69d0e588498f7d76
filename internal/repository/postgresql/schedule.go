package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nivel36/janus/internal/domain/schedule"
	"github.com/nivel36/janus/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// FindTimeRange implements schedule.ScheduleRepository. Schedule rules are
// stored per weekday (1=Monday..7=Sunday) with their clock times as text.
func (r *scheduleRepository) FindTimeRange(ctx context.Context, employeeID string, date time.Time) (*schedule.TimeRange, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT start_time, end_time
		FROM schedule_rules
		WHERE employee_id = $1
		  AND day_of_week = $2
		  AND deleted_at IS NULL
		LIMIT 1
	`

	var startStr, endStr string
	err := q.QueryRow(ctx, query, employeeID, isoWeekday(date)).Scan(&startStr, &endStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no schedule for that day
		}
		return nil, fmt.Errorf("failed to get schedule rule: %w", err)
	}

	startTime, err := time.Parse("15:04:05", startStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule start time: %w", err)
	}
	endTime, err := time.Parse("15:04:05", endStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule end time: %w", err)
	}

	return &schedule.TimeRange{StartTime: startTime, EndTime: endTime}, nil
}

// isoWeekday maps time.Weekday to ISO numbering, 1=Monday through 7=Sunday.
func isoWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
