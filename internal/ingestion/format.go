package ingestion

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var mimeFormats = map[string]types.DocumentFormat{
	"application/pdf":    types.FormatPDF,
	"application/x-pdf":  types.FormatPDF,
	"application/msword": types.FormatDOC,
	"text/plain":         types.FormatText,

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": types.FormatDOCX,
}

var extensionFormats = map[string]types.DocumentFormat{
	".pdf":  types.FormatPDF,
	".docx": types.FormatDOCX,
	".doc":  types.FormatDOC,
	".txt":  types.FormatText,
	".text": types.FormatText,
}

// DetectFormat decides the document format from the MIME type, falling back to
// the file name extension when the MIME type is missing or generic.
func DetectFormat(mimeType, fileName string) (types.DocumentFormat, error) {
	if mimeType != "" {
		mediaType, _, err := mime.ParseMediaType(mimeType)
		if err != nil {
			mediaType = strings.ToLower(strings.TrimSpace(mimeType))
		}
		if format, ok := mimeFormats[mediaType]; ok {
			return format, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if format, ok := extensionFormats[ext]; ok {
		return format, nil
	}

	return "", &UnsupportedFormatError{MIMEType: mimeType, FileName: fileName}
}

// ParseFormat validates a declared format name such as "pdf" or ".docx".
func ParseFormat(name string) (types.DocumentFormat, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch types.DocumentFormat(normalized) {
	case types.FormatPDF, types.FormatDOCX, types.FormatDOC, types.FormatText:
		return types.DocumentFormat(normalized), nil
	}
	return "", &UnsupportedFormatError{Format: name}
}
