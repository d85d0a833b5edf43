package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/teamform/teamform/internal/api/middleware"
	"github.com/teamform/teamform/internal/api/response"
	"github.com/teamform/teamform/internal/api/validation"
	"github.com/teamform/teamform/internal/formation"
	"github.com/teamform/teamform/internal/tsv"
)

// SuccessDetail is the detail message of a processed batch.
const SuccessDetail = "file processed successfully"

type assignResponse struct {
	Result        formation.Result  `json:"result"`
	RowsProcessed int               `json:"rows_processed"`
	Detail        string            `json:"detail"`
	Summary       formation.Summary `json:"summary"`
}

// AssignHandler handles POST /api/student-projects/assign.
type AssignHandler struct {
	engine            *formation.Engine
	allowedExtensions []string
	maxUploadBytes    int64
	randSource        RandSource
}

// NewAssignHandler creates a new AssignHandler.
func NewAssignHandler(engine *formation.Engine, allowedExtensions []string, maxUploadBytes int64, randSource RandSource) *AssignHandler {
	return &AssignHandler{
		engine:            engine,
		allowedExtensions: allowedExtensions,
		maxUploadBytes:    maxUploadBytes,
		randSource:        randSource,
	}
}

// ServeHTTP validates the uploaded submissions file and forms teams from it.
func (h *AssignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Err(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("File must be at most %d bytes", h.maxUploadBytes), requestID)
			return
		}
		response.Err(w, http.StatusBadRequest, "MISSING_FILE", "Request must include a multipart file field named \"file\"", requestID)
		return
	}
	defer file.Close()

	fieldErrors := validation.ValidateUpload(validation.UploadRequest{
		Filename:          header.Filename,
		AllowedExtensions: h.allowedExtensions,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		h.failProcessing(w, err, header.Filename, requestID)
		return
	}

	text, err := tsv.Decode(raw)
	if err != nil {
		h.failProcessing(w, err, header.Filename, requestID)
		return
	}

	report := tsv.Validate(text)
	if !report.OK {
		slog.Info("submissions rejected by validator",
			"file", header.Filename,
			"rowsTotal", report.RowsTotal,
			"rowsInvalid", report.RowsInvalid,
			"requestId", requestID,
		)
		response.ErrWithDetails(w, http.StatusUnprocessableEntity, "INVALID_ROWS", "File failed row validation", report, requestID)
		return
	}

	rows, err := tsv.ParseRecords(text)
	if err != nil {
		h.failProcessing(w, err, header.Filename, requestID)
		return
	}

	outcome := h.engine.Run(rows, h.randSource())
	slog.Info("teams formed",
		"file", header.Filename,
		"rows", len(rows),
		"validTeams", outcome.Summary.ValidTeams,
		"invalidTeams", outcome.Summary.InvalidTeams,
		"otherTeams", outcome.Summary.OtherTeams,
		"unassigned", outcome.Summary.Unassigned,
		"requestId", requestID,
	)

	response.Success(w, http.StatusOK, assignResponse{
		Result:        outcome.Result,
		RowsProcessed: len(rows),
		Detail:        SuccessDetail,
		Summary:       outcome.Summary,
	}, requestID)
}

func (h *AssignHandler) failProcessing(w http.ResponseWriter, err error, filename, requestID string) {
	slog.Error("failed to process submissions file", "error", err, "file", filename, "requestId", requestID)
	response.Err(w, http.StatusInternalServerError, "PROCESSING_FAILED", fmt.Sprintf("failed to process file: %v", err), requestID)
}
