package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		FileName:  "resume.pdf",
		Format:    types.FormatPDF,
		SizeBytes: 1024,
		Hash:      "abcd1234",
		Timestamp: "2024-01-01T00:00:00Z",
	}

	jsonBytes, err := json.MarshalIndent(metadata, "", "  ")
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
	assert.Contains(t, string(jsonBytes), `"size_bytes": 1024`)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash([]byte("test content"))
	hash2 := computeHash([]byte("different content"))

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash([]byte("test content")))
}

func TestNewMetadata(t *testing.T) {
	data := []byte("resume body")
	doc := &types.ExtractedDocument{Text: "resume body", Format: types.FormatText, FileName: "cv.txt"}

	metadata := NewMetadata(data, doc)

	assert.Equal(t, "cv.txt", metadata.FileName)
	assert.Equal(t, types.FormatText, metadata.Format)
	assert.Equal(t, len(data), metadata.SizeBytes)
	assert.Equal(t, computeHash(data), metadata.Hash)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_NilDocument(t *testing.T) {
	metadata := NewMetadata([]byte("x"), nil)

	assert.Empty(t, metadata.FileName)
	assert.NotEmpty(t, metadata.Hash)
}
