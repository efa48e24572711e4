package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Metadata describes an uploaded document. It travels next to the analysis
// result and never feeds into scoring.
type Metadata struct {
	FileName  string               `json:"file_name,omitempty"`
	Format    types.DocumentFormat `json:"format"`
	SizeBytes int                  `json:"size_bytes"`
	Hash      string               `json:"hash"`      // SHA256 hex digest of the raw bytes
	Timestamp string               `json:"timestamp"` // RFC3339 format
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(data []byte, doc *types.ExtractedDocument) *Metadata {
	m := &Metadata{
		SizeBytes: len(data),
		Hash:      computeHash(data),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if doc != nil {
		m.FileName = doc.FileName
		m.Format = doc.Format
	}
	return m
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
