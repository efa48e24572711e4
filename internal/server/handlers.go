package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Multipart field names accepted by POST /analyze
const (
	fieldResume         = "resume"
	fieldJobDescription = "jobDescription"
	fieldFormat         = "format"
)

// handleAnalyze analyzes an uploaded resume file against a job description.
// The format comes from the optional "format" field, else from the part's
// Content-Type and file name.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		if isTooLarge(err) {
			s.fail(w, &ErrUploadTooLarge{Limit: s.maxUploadBytes})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart body: "+err.Error())
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	jobText := r.FormValue(fieldJobDescription)
	if strings.TrimSpace(jobText) == "" {
		s.fail(w, &ErrValidation{Field: fieldJobDescription, Message: "required"})
		return
	}

	file, header, err := r.FormFile(fieldResume)
	if err != nil {
		s.fail(w, &ErrValidation{Field: fieldResume, Message: "required"})
		return
	}
	defer func() { _ = file.Close() }()

	var format types.DocumentFormat
	if declared := r.FormValue(fieldFormat); declared != "" {
		format, err = ingestion.ParseFormat(declared)
	} else {
		format, err = ingestion.DetectFormat(header.Header.Get("Content-Type"), header.Filename)
	}
	if err != nil {
		s.fail(w, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume: "+err.Error())
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), data, format, header.Filename, jobText)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{ID: requestID(r), Result: result})
}

// handleAnalyzeText analyzes resume text sent as JSON
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var req types.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			s.fail(w, &ErrUploadTooLarge{Limit: s.maxUploadBytes})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.analyzer.AnalyzeText(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.fail(w, err)
		return
	}
	if req.FileName != "" {
		result.FileName = req.FileName
	}

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{ID: requestID(r), Result: result})
}

// fail maps err to a status code and writes it as an error response
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[analyze] internal error: %v", err)
		s.errorResponse(w, status, "Internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// requestID returns the ID assigned by the middleware, or a fresh one when the
// handler is called outside the middleware chain
func requestID(r *http.Request) uuid.UUID {
	if id, err := middleware.GetRequestID(r); err == nil {
		return id
	}
	return uuid.New()
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

// extractValidationErrors extracts user-friendly error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// Return first validation error for simplicity
		ve := validationErrors[0]
		return (&ErrValidation{Field: ve.Field(), Message: ve.Tag()}).Error()
	}
	return "validation error: invalid request"
}
