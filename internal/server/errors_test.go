package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "resume", Message: "required"}
	assert.Equal(t, "validation error: resume - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrUploadTooLarge(t *testing.T) {
	err := &ErrUploadTooLarge{Limit: 1024}
	assert.Equal(t, "upload exceeds 1024 bytes", err.Error())
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "InsufficientJobDescriptionError",
			err:      &pipeline.InsufficientJobDescriptionError{Length: 10, Minimum: 50},
			expected: http.StatusBadRequest,
		},
		{
			name:     "UnsupportedFormatError",
			err:      &ingestion.UnsupportedFormatError{Format: "rtf"},
			expected: http.StatusUnsupportedMediaType,
		},
		{
			name:     "EmptyDocumentError",
			err:      &ingestion.EmptyDocumentError{Format: types.FormatPDF},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "DecodeError",
			err:      &ingestion.DecodeError{Format: types.FormatDOCX, Cause: errors.New("zip: not a valid zip file")},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "Deadline",
			err:      context.DeadlineExceeded,
			expected: http.StatusGatewayTimeout,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
