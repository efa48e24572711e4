package ingestion

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// UnsupportedFormatError is returned when neither the MIME type nor the file
// name identifies a supported resume format
type UnsupportedFormatError struct {
	Format   string
	MIMEType string
	FileName string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("unsupported document format %q", e.Format)
	}
	return fmt.Sprintf("unsupported document format (mime type %q, file name %q)", e.MIMEType, e.FileName)
}

// EmptyDocumentError is returned when extraction yields no text
type EmptyDocumentError struct {
	Format types.DocumentFormat
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no text could be extracted from %s document", e.Format)
}

// DecodeError represents a failure to decode the document bytes
type DecodeError struct {
	Format types.DocumentFormat
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s document", e.Format)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
