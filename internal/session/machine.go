// Package session implements the interview session controller: it drives a
// candidate through the ordered question sequence under a global time budget,
// submits answers to the remote scorer, and hands off to the results view.
package session

import (
	"fmt"
	"strings"

	"github.com/devmirai/interview-agent/internal/gateway"
)

// Phase is the controller's lifecycle state. All other flags (submitting,
// active, completed) are derived from it so they cannot disagree.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseGenerating
	PhaseActive
	PhaseSubmitting
	PhaseCompleting
	PhaseResults
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseGenerating:
		return "generating"
	case PhaseActive:
		return "active"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleting:
		return "completing"
	case PhaseResults:
		return "results"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the single value holding everything the controller owns for one
// session: phase, question sequence, current index, the answer buffer, the
// remaining time budget, and the evaluation set once fetched.
type State struct {
	Phase       Phase
	Session     *gateway.Session
	Questions   []gateway.Question
	Index       int
	Answer      string
	Remaining   int
	Evaluations []gateway.Evaluation
}

// active reports whether the session still accepts ticks and submissions.
// PhaseSubmitting counts: the timer keeps running while an answer is in
// flight.
func (s State) active() bool {
	return s.Phase == PhaseActive || s.Phase == PhaseSubmitting
}

// CurrentQuestion returns the question at the current index, if any.
func (s State) CurrentQuestion() (gateway.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return gateway.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Progress returns the completion fraction (index+1)/length, or 0 when no
// questions are loaded.
func (s State) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Index+1) / float64(len(s.Questions))
}

// TimeDisplay renders the remaining budget as zero-padded MM:SS.
func (s State) TimeDisplay() string {
	return FormatClock(s.Remaining)
}

// SubmitEnabled reports whether a submission may be started: the session is
// answering (not already submitting) and the trimmed answer is non-empty.
func (s State) SubmitEnabled() bool {
	return s.Phase == PhaseActive && strings.TrimSpace(s.Answer) != ""
}

// advance moves to the next question and clears the answer buffer. Callers
// must ensure more questions remain.
func advance(s State) State {
	s.Index++
	s.Answer = ""
	return s
}

// Tick is the pure countdown step: given the current remaining seconds it
// returns the next value and whether the budget expired on this tick. The
// result never goes negative.
func Tick(remaining int) (next int, expired bool) {
	if remaining <= 1 {
		return 0, true
	}
	return remaining - 1, false
}

// FormatClock renders a second count as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
