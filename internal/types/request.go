package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyzeTextRequest is the JSON body of a plain-text analysis request
type AnalyzeTextRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	FileName       string `json:"fileName,omitempty" validate:"omitempty,max=255"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse wraps an analysis with the identifier assigned to it
type AnalyzeResponse struct {
	ID     uuid.UUID       `json:"id"`
	Result *AnalysisResult `json:"result"`
}
