package gateway

import "fmt"

// NotFoundError indicates the requested record does not exist on the backend.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NetworkError represents a transport-level failure or an unexpected HTTP
// status for an operation with no more specific failure type.
type NetworkError struct {
	Op     string
	URL    string
	Status int
	Cause  error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed for %s: %v", e.Op, e.URL, e.Cause)
	}
	return fmt.Sprintf("%s failed for %s: unexpected status %d", e.Op, e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates the remote scorer could not produce a question
// sequence for the session.
type GenerationError struct {
	SessionID int64
	Cause     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed for session %d: %v", e.SessionID, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// EvaluationError indicates an answer submission could not be scored. The
// cause distinguishes transport failures (NetworkError) from scorer
// rejections (DecodeError or an HTTP status carried by NetworkError).
type EvaluationError struct {
	QuestionID int64
	Cause      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation failed for question %d: %v", e.QuestionID, e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// DecodeError indicates a response body could not be parsed or failed schema
// validation.
type DecodeError struct {
	Op    string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Op, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
