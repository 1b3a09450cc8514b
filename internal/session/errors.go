package session

import (
	"errors"
	"fmt"
)

var errNoGateway = errors.New("session controller requires a gateway")

// LoadError indicates initialization failed: the session snapshot, question
// sequence, generation call, or evaluation set could not be fetched. Fatal
// to the session; the controller has already routed the user away. The cause
// chain preserves the gateway's typed failure (NotFoundError, NetworkError,
// GenerationError).
type LoadError struct {
	SessionID int64
	Cause     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load session %d: %v", e.SessionID, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SubmissionError indicates an answer submission failed. Recoverable: the
// session state is untouched (same index, answer preserved, timer running)
// and the candidate may retry.
type SubmissionError struct {
	QuestionID int64
	Cause      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to submit answer for question %d: %v", e.QuestionID, e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
