package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mariana-dist/attendance-backend-go/internal/domain/employee"
	"github.com/mariana-dist/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	Positions(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")

	resp, err := h.employeeService.Get(r.Context(), pin)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Update(r.Context(), pin, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", resp)
}

// Departments implements EmployeeHandler.
func (h *employeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	values, err := h.employeeService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, values)
}

// Positions implements EmployeeHandler.
func (h *employeeHandlerImpl) Positions(w http.ResponseWriter, r *http.Request) {
	values, err := h.employeeService.Positions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, values)
}
