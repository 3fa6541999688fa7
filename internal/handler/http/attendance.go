package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/dailystatus"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService  attendance.AttendanceService
	dailyStatusService dailystatus.DailyStatusService
	employeeService    employee.EmployeeService
	clock              clock.Clock
}

func NewAttendanceHandler(
	attendanceService attendance.AttendanceService,
	dailyStatusService dailystatus.DailyStatusService,
	employeeService employee.EmployeeService,
	clk clock.Clock,
) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService:  attendanceService,
		dailyStatusService: dailyStatusService,
		employeeService:    employeeService,
		clock:              clk,
	}
}

// Toggle implements AttendanceHandler.
func (h *attendanceHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Toggle(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrDayClosed) {
			response.ConflictWithData(w, err.Error(), result)
			return
		}
		response.HandleError(w, err)
		return
	}

	message := "Checked in successfully"
	if result.Action == attendance.ActionCheckedOut {
		message = "Checked out successfully"
	}
	response.SuccessWithMessage(w, message, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.ListEmployees(r.Context(), identity, employee.ListEmployeesRequest{
		Page: queryInt(r, "page", 1),
		Size: queryInt(r, "limit", 10),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	statuses := make([]dailystatus.Response, 0, len(result.Employees))
	for _, e := range result.Employees {
		if e.DailyStatus != nil {
			statuses = append(statuses, *e.DailyStatus)
		}
	}

	response.SuccessWithMeta(w, statuses, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	day := h.clock.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := clock.ParseDay(raw)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		day = parsed
	}

	if _, err := h.employeeService.GetEmployee(r.Context(), identity, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.dailyStatusService.ForEmployee(r.Context(), employeeID, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dailystatus.NewResponse(employeeID, day, status))
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := attendance.MonthlyAttendanceRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Month:      r.URL.Query().Get("month"),
	}

	report, err := h.attendanceService.Monthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	req := attendance.MonthlyAttendanceRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Month:      r.URL.Query().Get("month"),
	}

	pdf, err := h.attendanceService.ExportMonthlyPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := req.Month
	if month == "" {
		month = h.clock.Today().Format("2006-01")
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s-%s.pdf"`, req.EmployeeID, month))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Error("failed to write attendance pdf", "employee_id", req.EmployeeID, "error", err)
	}
}
