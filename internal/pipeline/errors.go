package pipeline

import "fmt"

// InsufficientJobDescriptionError is returned when the job description is
// shorter than the configured minimum
type InsufficientJobDescriptionError struct {
	Length  int
	Minimum int
}

func (e *InsufficientJobDescriptionError) Error() string {
	return fmt.Sprintf("job description too short: %d characters, minimum %d", e.Length, e.Minimum)
}
