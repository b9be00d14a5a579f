package http

import (
	"net/http"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/attendance"
	"github.com/mariana-dist/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	ChronicReport(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Punches(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MonthlyReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := attendance.MonthlyReportRequest{
		Month:      r.URL.Query().Get("month"),
		Day:        r.URL.Query().Get("day"),
		PIN:        r.URL.Query().Get("pin"),
		Department: r.URL.Query().Get("department"),
		Schedule:   r.URL.Query().Get("schedule"),
	}

	report, err := h.attendanceService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ChronicReport implements AttendanceHandler.
func (h *attendanceHandlerImpl) ChronicReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.ChronicReport(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Overview implements AttendanceHandler.
func (h *attendanceHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	report, err := h.attendanceService.Overview(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Punches implements AttendanceHandler.
func (h *attendanceHandlerImpl) Punches(w http.ResponseWriter, r *http.Request) {
	log, err := h.attendanceService.Punches(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, log)
}
