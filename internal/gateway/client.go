package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devmirai/interview-agent/internal/schemas"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "devmirai-interview-agent/1.0"

// TokenSource supplies the bearer token for each request. Returning an empty
// string sends the request unauthenticated.
type TokenSource func() string

// Options configures the gateway client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Token     TokenSource
	// HTTPClient overrides the default client (used by tests).
	HTTPClient *http.Client
}

// DefaultOptions returns sensible defaults for the gateway client.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the devmirai backend over HTTP/JSON. It is stateless from
// the controller's perspective; one instance may serve many calls.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	token     TokenSource
}

// New creates a gateway client for the given base URL.
func New(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		http:      httpClient,
		userAgent: userAgent,
		token:     opts.Token,
	}, nil
}

// do performs one JSON round-trip and returns the raw body and status code.
// Transport failures come back as *NetworkError.
func (c *Client) do(ctx context.Context, op, method, path string, body any) ([]byte, int, error) {
	fullURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, 0, &NetworkError{Op: op, URL: fullURL, Cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Op: op, URL: fullURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Op: op, URL: fullURL, Cause: err}
	}

	return data, resp.StatusCode, nil
}

// GetSession fetches the session snapshot for one application.
func (c *Client) GetSession(ctx context.Context, id int64) (*Session, error) {
	const op = "get session"
	path := fmt.Sprintf("/postulacion/%d", id)

	data, status, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "session", ID: id}
	}
	if status != http.StatusOK {
		return nil, &NetworkError{Op: op, URL: c.baseURL + path, Status: status}
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, &DecodeError{Op: op, Cause: err}
	}
	return &session, nil
}

// GenerateQuestions asks the remote scorer to produce the ordered question
// sequence for a pending session. The sequence is fixed once generated.
func (c *Client) GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) ([]Question, error) {
	const op = "generate questions"

	if err := req.Validate(); err != nil {
		return nil, &GenerationError{SessionID: req.SessionID, Cause: err}
	}

	data, status, err := c.do(ctx, op, http.MethodPost, "/pregunta/generar", req)
	if err != nil {
		return nil, &GenerationError{SessionID: req.SessionID, Cause: err}
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &GenerationError{
			SessionID: req.SessionID,
			Cause:     &NetworkError{Op: op, URL: c.baseURL + "/pregunta/generar", Status: status},
		}
	}

	questions, err := decodeQuestionList(op, data)
	if err != nil {
		return nil, &GenerationError{SessionID: req.SessionID, Cause: err}
	}
	return questions, nil
}

// GetQuestions fetches the previously generated question sequence.
func (c *Client) GetQuestions(ctx context.Context, sessionID int64) ([]Question, error) {
	const op = "get questions"
	path := fmt.Sprintf("/pregunta/postulacion/%d", sessionID)

	data, status, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "questions for session", ID: sessionID}
	}
	if status != http.StatusOK {
		return nil, &NetworkError{Op: op, URL: c.baseURL + path, Status: status}
	}

	return decodeQuestionList(op, data)
}

// SubmitAnswer submits one answer for scoring and returns the evaluation.
// Callers advancing the session only need success or failure; the evaluation
// itself is informational.
func (c *Client) SubmitAnswer(ctx context.Context, req EvaluateAnswerRequest) (*Evaluation, error) {
	const op = "submit answer"

	if err := req.Validate(); err != nil {
		return nil, &EvaluationError{QuestionID: req.QuestionID, Cause: err}
	}

	data, status, err := c.do(ctx, op, http.MethodPost, "/respuesta/evaluar", req)
	if err != nil {
		return nil, &EvaluationError{QuestionID: req.QuestionID, Cause: err}
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &EvaluationError{
			QuestionID: req.QuestionID,
			Cause:      &NetworkError{Op: op, URL: c.baseURL + "/respuesta/evaluar", Status: status},
		}
	}

	if err := schemas.ValidateEvaluation(data); err != nil {
		return nil, &EvaluationError{QuestionID: req.QuestionID, Cause: &DecodeError{Op: op, Cause: err}}
	}

	var evaluation Evaluation
	if err := json.Unmarshal(data, &evaluation); err != nil {
		return nil, &EvaluationError{QuestionID: req.QuestionID, Cause: &DecodeError{Op: op, Cause: err}}
	}
	return &evaluation, nil
}

// GetEvaluations fetches the evaluation set for a session, ordered by
// original question index.
func (c *Client) GetEvaluations(ctx context.Context, sessionID int64) ([]Evaluation, error) {
	const op = "get evaluations"
	path := fmt.Sprintf("/evaluacion/postulacion/%d", sessionID)

	data, status, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &NetworkError{Op: op, URL: c.baseURL + path, Status: status}
	}

	if err := schemas.ValidateEvaluationList(data); err != nil {
		return nil, &DecodeError{Op: op, Cause: err}
	}

	var evaluations []Evaluation
	if err := json.Unmarshal(data, &evaluations); err != nil {
		return nil, &DecodeError{Op: op, Cause: err}
	}
	return evaluations, nil
}

// ListOpenPostings fetches the currently open job postings. Read-only; the
// controller consumes postings only as the source of session metadata.
func (c *Client) ListOpenPostings(ctx context.Context) ([]Posting, error) {
	const op = "list open postings"
	path := "/convocatoria/activas"

	data, status, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &NetworkError{Op: op, URL: c.baseURL + path, Status: status}
	}

	var postings []Posting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, &DecodeError{Op: op, Cause: err}
	}
	return postings, nil
}

func decodeQuestionList(op string, data []byte) ([]Question, error) {
	if err := schemas.ValidateQuestionList(data); err != nil {
		return nil, &DecodeError{Op: op, Cause: err}
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, &DecodeError{Op: op, Cause: err}
	}
	return questions, nil
}
