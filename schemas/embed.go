// Package schemas holds the JSON Schemas for documents the matcher emits.
package schemas

import _ "embed"

// AnalysisResultPath is the schema's path relative to the repository root
const AnalysisResultPath = "schemas/analysis_result.schema.json"

// AnalysisResult is the JSON Schema of an emitted analysis result
//
//go:embed analysis_result.schema.json
var AnalysisResult string
