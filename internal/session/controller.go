package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/devmirai/interview-agent/internal/gateway"
)

// Defaults matching the hosted interview experience: a 60-minute budget and
// mid-scale question difficulty, with "Developer" as the role label when the
// posting reference is missing from the session snapshot.
const (
	DefaultBudgetSeconds   = 3600
	DefaultDifficulty      = 5
	DefaultRoleLabel       = "Developer"
	DefaultCompletionDelay = 2 * time.Second

	defaultTickInterval = time.Second
)

// Gateway is the remote session gateway the controller depends on. The
// gateway package's Client satisfies it.
type Gateway interface {
	GetSession(ctx context.Context, id int64) (*gateway.Session, error)
	GenerateQuestions(ctx context.Context, req gateway.GenerateQuestionsRequest) ([]gateway.Question, error)
	GetQuestions(ctx context.Context, sessionID int64) ([]gateway.Question, error)
	SubmitAnswer(ctx context.Context, req gateway.EvaluateAnswerRequest) (*gateway.Evaluation, error)
	GetEvaluations(ctx context.Context, sessionID int64) ([]gateway.Evaluation, error)
}

// Notifier receives user-facing notifications from the controller. The host
// decides how to render them.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Navigator is the higher-level navigation collaborator: the controller
// routes to it on completion and on fatal errors.
type Navigator interface {
	ShowResults(sessionID int64)
	ExitToDashboard()
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Warning(string) {}
func (NopNotifier) Error(string) {}

// NopNavigator ignores navigation requests.
type NopNavigator struct{}

func (NopNavigator) ShowResults(int64) {}
func (NopNavigator) ExitToDashboard() {}

// Options configures a Controller. Gateway is required; everything else has
// defaults.
type Options struct {
	Gateway   Gateway
	Notifier  Notifier
	Navigator Navigator

	// BudgetSeconds is the global time budget for one session.
	BudgetSeconds int
	// Difficulty is passed to question generation for pending sessions.
	Difficulty int
	// RoleLabel is the fallback role when the posting has none.
	RoleLabel string
	// CompletionDelay is the pause between the completion notification and
	// navigating to the results view.
	CompletionDelay time.Duration
	// TickInterval overrides the one-second tick (tests only).
	TickInterval time.Duration
}

// Controller owns the mutable state of exactly one interview session. All
// mutation happens under a single mutex; the tick path and the submission
// path serialize on it, and the completion race between "final answer
// accepted" and "time expired" is settled by whichever transition out of the
// active phases wins the lock first.
type Controller struct {
	mu    sync.Mutex
	state State

	gw     Gateway
	notify Notifier
	nav    Navigator

	attemptID uuid.UUID
	sessionID int64

	budget          int
	difficulty      int
	roleLabel       string
	completionDelay time.Duration
	tickInterval    time.Duration

	timer  *ticker
	done   chan struct{}
	closed bool
}

// New creates a controller for one session view. A fresh instance is
// required per session; Results is terminal.
func New(opts Options) (*Controller, error) {
	if opts.Gateway == nil {
		return nil, errNoGateway
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if opts.Navigator == nil {
		opts.Navigator = NopNavigator{}
	}
	if opts.BudgetSeconds <= 0 {
		opts.BudgetSeconds = DefaultBudgetSeconds
	}
	if opts.Difficulty <= 0 {
		opts.Difficulty = DefaultDifficulty
	}
	if opts.RoleLabel == "" {
		opts.RoleLabel = DefaultRoleLabel
	}
	if opts.CompletionDelay <= 0 {
		opts.CompletionDelay = DefaultCompletionDelay
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}

	return &Controller{
		state:           State{Phase: PhaseLoading},
		gw:              opts.Gateway,
		notify:          opts.Notifier,
		nav:             opts.Navigator,
		attemptID:       uuid.New(),
		budget:          opts.BudgetSeconds,
		difficulty:      opts.Difficulty,
		roleLabel:       opts.RoleLabel,
		completionDelay: opts.CompletionDelay,
		tickInterval:    opts.TickInterval,
		done:            make(chan struct{}),
	}, nil
}

// AttemptID is the client-generated identifier for this interview run, used
// to tag output and transcripts.
func (c *Controller) AttemptID() uuid.UUID {
	return c.attemptID
}

// Snapshot returns a copy of the current state. Questions and Evaluations
// are shared but immutable once loaded.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed after the completion transition has navigated to the
// results view.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// LoadSession initializes the controller from a session identifier. It
// decides between three branches: jump straight to results (completed
// session or explicit request), generate questions (pending session), or
// fetch the existing question sequence (session in progress). Any failure is
// fatal: the user is notified and routed back to the dashboard.
func (c *Controller) LoadSession(ctx context.Context, id int64, wantResults bool) error {
	c.mu.Lock()
	c.sessionID = id
	c.state = State{Phase: PhaseLoading}
	c.mu.Unlock()

	session, err := c.gw.GetSession(ctx, id)
	if err != nil {
		return c.failLoad(id, "Error loading interview data", err)
	}

	if wantResults || session.Status == gateway.StatusCompleted {
		evaluations, questions, err := c.fetchResults(ctx, id)
		if err != nil {
			return c.failLoad(id, "Error loading interview results", err)
		}
		c.mu.Lock()
		c.state = State{
			Phase:       PhaseResults,
			Session:     session,
			Questions:   questions,
			Evaluations: evaluations,
		}
		c.mu.Unlock()
		return nil
	}

	var questions []gateway.Question
	if session.Status == gateway.StatusPending {
		c.mu.Lock()
		c.state = State{Phase: PhaseGenerating, Session: session}
		c.mu.Unlock()

		questions, err = c.gw.GenerateQuestions(ctx, gateway.GenerateQuestionsRequest{
			Role:       roleFor(session, c.roleLabel),
			Difficulty: c.difficulty,
			PostingID:  postingID(session),
			SessionID:  id,
		})
		if err != nil {
			return c.failLoad(id, "Error generating interview questions", err)
		}
	} else {
		questions, err = c.gw.GetQuestions(ctx, id)
		if err != nil {
			return c.failLoad(id, "Error loading interview data", err)
		}
	}

	c.mu.Lock()
	c.state = State{
		Phase:     PhaseActive,
		Session:   session,
		Questions: questions,
		Index:     0,
		Remaining: c.budget,
	}
	if len(questions) > 0 {
		c.startTimerLocked()
	}
	c.mu.Unlock()
	return nil
}

// SetAnswer replaces the answer buffer for the current question. Ignored
// outside the active phases.
func (c *Controller) SetAnswer(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.active() {
		c.state.Answer = text
	}
}

// SubmitAnswer submits the current answer for scoring and advances the
// session. Precondition violations are no-ops: an empty answer warns the
// user, a submission already in flight is guarded silently. A failed
// submission leaves the session intact for retry. Accepting the final answer
// triggers the completion transition.
func (c *Controller) SubmitAnswer(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Phase == PhaseSubmitting {
		c.mu.Unlock()
		return nil
	}
	if c.state.Phase != PhaseActive {
		c.mu.Unlock()
		return nil
	}

	text := strings.TrimSpace(c.state.Answer)
	if text == "" {
		c.mu.Unlock()
		c.notify.Warning("Please provide an answer before proceeding.")
		return nil
	}

	question, ok := c.state.CurrentQuestion()
	if !ok || c.state.Session == nil {
		c.mu.Unlock()
		c.notify.Error("Interview data not available")
		return nil
	}

	c.state.Phase = PhaseSubmitting
	sessionID := c.sessionID
	c.mu.Unlock()

	_, err := c.gw.SubmitAnswer(ctx, gateway.EvaluateAnswerRequest{
		QuestionID: question.ID,
		Answer:     text,
		SessionID:  sessionID,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	// The time budget may have expired while the submission was in flight;
	// the completion path already ran and this continuation must not run a
	// second one.
	if c.state.Phase != PhaseSubmitting {
		return nil
	}

	if err != nil {
		c.state.Phase = PhaseActive
		c.notify.Error("Error submitting answer. Please try again.")
		return &SubmissionError{QuestionID: question.ID, Cause: err}
	}

	if c.state.Index < len(c.state.Questions)-1 {
		c.state = advance(c.state)
		c.state.Phase = PhaseActive
		c.notify.Success("Answer submitted successfully! Moving to next question...")
		return nil
	}

	c.completeLocked()
	return nil
}

// Close tears down the controller: the timer stops and any pending
// completion navigation is cancelled. Safe to call multiple times.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
}

// tick is the timer callback: decrement the budget while the session is
// active, and run the completion path exactly once when it expires.
func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.active() {
		return
	}

	next, expired := Tick(c.state.Remaining)
	c.state.Remaining = next
	if expired {
		c.notify.Warning("Time is up! Submitting your interview...")
		c.completeLocked()
	}
}

// completeLocked is the single completion path shared by the final-answer
// and time-expired triggers. The phase change out of the active states is
// the guard: whichever trigger wins the lock first runs it, and the loser
// observes the changed phase and does nothing. Must be called with the lock
// held.
func (c *Controller) completeLocked() {
	if !c.state.active() {
		return
	}

	c.state.Phase = PhaseCompleting
	c.stopTimerLocked()
	c.notify.Success("Interview completed successfully! Generating your results...")

	sessionID := c.sessionID
	go func() {
		time.Sleep(c.completionDelay)

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		c.state.Phase = PhaseResults
		c.mu.Unlock()

		c.nav.ShowResults(sessionID)
		close(c.done)
	}()
}

// failLoad marks the session failed, notifies once, and returns control to
// the navigation collaborator.
func (c *Controller) failLoad(id int64, msg string, cause error) error {
	c.mu.Lock()
	c.state.Phase = PhaseFailed
	c.stopTimerLocked()
	c.mu.Unlock()

	c.notify.Error(msg)
	c.nav.ExitToDashboard()
	return &LoadError{SessionID: id, Cause: cause}
}

// fetchResults retrieves the evaluation set and the question sequence in
// parallel; questions label the per-question results.
func (c *Controller) fetchResults(ctx context.Context, id int64) ([]gateway.Evaluation, []gateway.Question, error) {
	var evaluations []gateway.Evaluation
	var questions []gateway.Question

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		evaluations, err = c.gw.GetEvaluations(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = c.gw.GetQuestions(gCtx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return evaluations, questions, nil
}

func (c *Controller) startTimerLocked() {
	if c.timer != nil || c.closed {
		return
	}
	c.timer = startTicker(c.tickInterval, c.tick)
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// roleFor returns the posting's role title, or the configured fallback when
// the session has no posting reference.
func roleFor(s *gateway.Session, fallback string) string {
	if s != nil && s.Posting != nil && s.Posting.Role != "" {
		return s.Posting.Role
	}
	return fallback
}

func postingID(s *gateway.Session) int64 {
	if s != nil && s.Posting != nil {
		return s.Posting.ID
	}
	return 0
}
