package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nivel36/janus/internal/domain/shift"
	"github.com/nivel36/janus/internal/handler/http/response"
	"github.com/nivel36/janus/internal/pkg/validator"
)

type WorkShiftHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Precompute(w http.ResponseWriter, r *http.Request)
}

type workShiftHandlerImpl struct {
	workShiftService shift.WorkShiftService
}

func NewWorkShiftHandler(workShiftService shift.WorkShiftService) WorkShiftHandler {
	return &workShiftHandlerImpl{
		workShiftService: workShiftService,
	}
}

// Get implements WorkShiftHandler.
func (h *workShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	dateStr := r.URL.Query().Get("date")

	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.workShiftService.GetWorkShift(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("Failed to get work shift", "employee_id", employeeID, "date", dateStr, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Precompute implements WorkShiftHandler. It runs the materialization
// batch on demand, outside its nightly schedule.
func (h *workShiftHandlerImpl) Precompute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if err := h.workShiftService.Precompute(r.Context()); err != nil {
		slog.Error("On-demand precompute failed", "error", err)
		response.HandleError(w, err)
		return
	}
	slog.Info("On-demand precompute finished", "duration", time.Since(start))

	response.Accepted(w, "Work shift precompute completed")
}
