// Package gateway provides the HTTP client for the devmirai interview backend.
package gateway

import (
	"github.com/go-playground/validator/v10"
)

// SessionStatus enumerates the lifecycle states of an interview session.
type SessionStatus string

const (
	StatusPending    SessionStatus = "PENDIENTE"
	StatusInProgress SessionStatus = "EN_PROCESO"
	StatusCompleted  SessionStatus = "COMPLETADA"
	StatusRejected   SessionStatus = "RECHAZADA"
)

// Company is the hiring organization attached to a posting.
type Company struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"nombre"`
}

// Posting is a published job opening ("convocatoria").
type Posting struct {
	ID          int64    `json:"id,omitempty"`
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion,omitempty"`
	Role        string   `json:"puesto"`
	Active      bool     `json:"activo"`
	PublishedAt string   `json:"fechaPublicacion,omitempty"`
	ClosesAt    string   `json:"fechaCierre,omitempty"`
	Company     Company  `json:"empresa"`
}

// Session is one candidate's application to a posting ("postulacion").
// The controller holds a read-mostly snapshot of this record.
type Session struct {
	ID        int64         `json:"id"`
	AppliedAt string        `json:"fechaPostulacion,omitempty"`
	Status    SessionStatus `json:"estado"`
	Posting   *Posting      `json:"convocatoria,omitempty"`
}

// Question is one prompt in the fixed, ordered sequence generated for a
// session. Immutable once generated.
type Question struct {
	ID         int64  `json:"id"`
	Text       string `json:"texto"`
	Type       string `json:"tipo"`
	Difficulty int    `json:"dificultad"`
}

// Evaluation is the scorer's structured assessment of one answer.
// Sub-scores are on a 0-10 scale; Percentage is 0-100.
type Evaluation struct {
	ID         int64   `json:"id"`
	Clarity    float64 `json:"claridadEstructura"`
	Technical  float64 `json:"dominioTecnico"`
	Relevance  float64 `json:"pertinencia"`
	TotalScore float64 `json:"puntajeTotal"`
	Percentage float64 `json:"porcentajeObtenido"`
	Feedback   string  `json:"feedback"`
}

// GenerateQuestionsRequest asks the backend scorer to produce the question
// sequence for a session. PostingID may be zero when the posting reference
// is missing from the session snapshot.
type GenerateQuestionsRequest struct {
	Role       string `json:"puesto" validate:"required"`
	Difficulty int    `json:"dificultad" validate:"required,min=1,max=10"`
	PostingID  int64  `json:"idConvocatoria" validate:"min=0"`
	SessionID  int64  `json:"idPostulacion" validate:"required"`
}

// EvaluateAnswerRequest submits one answer for scoring.
type EvaluateAnswerRequest struct {
	QuestionID int64  `json:"preguntaId" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	SessionID  int64  `json:"postulacionId" validate:"required"`
}

// Validate validates the GenerateQuestionsRequest using the validator.
func (r *GenerateQuestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluateAnswerRequest using the validator.
func (r *EvaluateAnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
