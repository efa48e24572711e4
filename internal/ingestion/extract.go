package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// BinarySampleSize is the number of bytes sampled for binary detection
	BinarySampleSize = 1000
	// BinaryThreshold is the share of control characters that marks data as binary
	BinaryThreshold = 0.3
)

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
	utf8BOM  = []byte("\xef\xbb\xbf")
)

// Extract decodes document bytes of the declared format into plain text.
// Text that is empty after trimming is reported as an EmptyDocumentError.
func Extract(data []byte, format types.DocumentFormat, fileName string) (*types.ExtractedDocument, error) {
	var (
		text      string
		pageCount int
		err       error
	)

	switch format {
	case types.FormatPDF:
		text, pageCount, err = extractPDF(data)
	case types.FormatDOCX:
		text, pageCount, err = extractDOCX(data)
	case types.FormatDOC:
		text, err = extractDOC(data)
	case types.FormatText:
		text, err = extractPlainText(data)
	default:
		return nil, &UnsupportedFormatError{Format: string(format), FileName: fileName}
	}
	if err != nil {
		return nil, err
	}

	text = CleanText(text)
	if text == "" {
		return nil, &EmptyDocumentError{Format: format}
	}

	return &types.ExtractedDocument{
		Text:      text,
		Format:    format,
		FileName:  fileName,
		PageCount: pageCount,
		WordCount: lexical.CountWords(text),
		Bytes:     data,
	}, nil
}

// IsBinaryData reports whether data looks like a binary container rather than text
func IsBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.HasPrefix(data, pdfMagic) || bytes.HasPrefix(data, zipMagic) {
		return true
	}

	sampleSize := min(BinarySampleSize, len(data))
	nonPrintable := 0
	for _, ch := range data[:sampleSize] {
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' && ch != '\f' {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(sampleSize) > BinaryThreshold
}

// CountPDFPages returns the page count of a PDF, or false when the bytes are not a readable PDF.
func CountPDFPages(data []byte) (int, bool) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), pdfMagic) {
		return 0, false
	}
	reader, err := openPDF(data)
	if err != nil {
		return 0, false
	}
	return reader.NumPage(), true
}

func extractPDF(data []byte) (string, int, error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), pdfMagic) {
		return "", 0, &DecodeError{Format: types.FormatPDF, Cause: errors.New("missing %PDF header")}
	}

	reader, err := openPDF(data)
	if err != nil {
		return "", 0, &DecodeError{Format: types.FormatPDF, Cause: err}
	}

	text, err := pdfPlainText(reader)
	if err != nil {
		return "", 0, &DecodeError{Format: types.FormatPDF, Cause: err}
	}
	return text, reader.NumPage(), nil
}

// openPDF guards against panics raised by the PDF reader on malformed input.
func openPDF(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

func pdfPlainText(reader *pdf.Reader) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf content: %v", r)
		}
	}()

	rs, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, int, error) {
	if !bytes.HasPrefix(data, zipMagic) {
		return "", 0, &DecodeError{Format: types.FormatDOCX, Cause: errors.New("not a zip container")}
	}

	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", 0, &DecodeError{Format: types.FormatDOCX, Cause: err}
	}
	return text, CountDOCXPages(data), nil
}

type docxAppProperties struct {
	Pages int `xml:"Pages"`
}

// CountDOCXPages reads the page count Word stores in docProps/app.xml.
// Returns 0 when the document does not carry it.
func CountDOCXPages(data []byte) int {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	for _, f := range zr.File {
		if f.Name != "docProps/app.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return 0
		}
		defer rc.Close()

		var props docxAppProperties
		if err := xml.NewDecoder(rc).Decode(&props); err != nil {
			return 0
		}
		return max(props.Pages, 0)
	}
	return 0
}

func extractDOC(data []byte) (string, error) {
	text, _, err := docconv.ConvertDoc(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Format: types.FormatDOC, Cause: err}
	}
	return text, nil
}

func extractPlainText(data []byte) (string, error) {
	if IsBinaryData(data) {
		return "", &DecodeError{Format: types.FormatText, Cause: errors.New("content is binary")}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), ""), nil
	}
	return string(data), nil
}
