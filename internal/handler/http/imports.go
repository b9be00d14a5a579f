package http

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/mariana-dist/attendance-backend-go/internal/domain/imports"
	"github.com/mariana-dist/attendance-backend-go/internal/handler/http/response"
)

type ImportHandler interface {
	ImportPunches(w http.ResponseWriter, r *http.Request)
	ImportEmployees(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService imports.ImportService
}

func NewImportHandler(importService imports.ImportService) ImportHandler {
	return &importHandlerImpl{
		importService: importService,
	}
}

// ImportPunches implements ImportHandler.
func (h *importHandlerImpl) ImportPunches(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.importService.ImportPunches(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punches imported", result)
}

// ImportEmployees implements ImportHandler.
func (h *importHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	file, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.importService.ImportEmployees(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employees imported", result)
}

// formFile extracts the uploaded CSV from the multipart form (max 10MB).
func (h *importHandlerImpl) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return nil, false
	}
	return file, true
}
