package shift

// TimeLogResponse is one clock record inside a work shift response.
type TimeLogResponse struct {
	ID    string `json:"id"`
	Entry string `json:"entry"`
	Exit  string `json:"exit"`
}

// WorkShiftResponse is the API representation of a work shift.
type WorkShiftResponse struct {
	EmployeeID   string            `json:"employee_id"`
	WorksiteID   *string           `json:"worksite_id,omitempty"`
	Date         string            `json:"date"`
	WorkMinutes  int               `json:"work_minutes"`
	PauseMinutes int               `json:"pause_minutes"`
	Logs         []TimeLogResponse `json:"logs"`
	Materialized bool              `json:"materialized"`
}

// ToResponse maps a work shift to its API representation.
func ToResponse(ws WorkShift, materialized bool) WorkShiftResponse {
	logs := make([]TimeLogResponse, 0, ws.Logs.Len())
	for _, lg := range ws.Logs.Logs() {
		logs = append(logs, TimeLogResponse{
			ID:    lg.ID,
			Entry: lg.Entry.UTC().Format("2006-01-02 15:04:05"),
			Exit:  lg.Exit.UTC().Format("2006-01-02 15:04:05"),
		})
	}

	return WorkShiftResponse{
		EmployeeID:   ws.EmployeeID,
		WorksiteID:   ws.WorksiteID,
		Date:         ws.Date.Format("2006-01-02"),
		WorkMinutes:  int(ws.WorkDuration.Minutes()),
		PauseMinutes: int(ws.PauseDuration.Minutes()),
		Logs:         logs,
		Materialized: materialized,
	}
}
