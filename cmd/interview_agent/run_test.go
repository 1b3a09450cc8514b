package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmirai/interview-agent/internal/config"
	"github.com/devmirai/interview-agent/internal/gateway"
)

func TestRunCommand_MissingSessionFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "session")
}

func TestResultsCommand_MissingSessionFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "results")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "session")
}

// interviewBackend serves the minimal backend surface one session needs.
func interviewBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /postulacion/42", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": 42,
			"estado": "EN_PROCESO",
			"convocatoria": {
				"id": 9,
				"titulo": "Backend opening",
				"puesto": "Backend Engineer",
				"empresa": {"id": 1, "nombre": "devmirai"}
			}
		}`))
	})
	mux.HandleFunc("GET /pregunta/postulacion/42", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "texto": "Describe a system you designed.", "tipo": "TECHNICAL", "dificultad": 5}
		]`))
	})
	mux.HandleFunc("POST /respuesta/evaluar", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": 1,
			"claridadEstructura": 8,
			"dominioTecnico": 9,
			"pertinencia": 7,
			"puntajeTotal": 8,
			"porcentajeObtenido": 80,
			"feedback": "Solid structure."
		}`))
	})
	mux.HandleFunc("GET /evaluacion/postulacion/42", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "claridadEstructura": 8, "dominioTecnico": 9, "pertinencia": 7, "puntajeTotal": 8, "porcentajeObtenido": 80, "feedback": "Solid structure."}
		]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRunInterview_SingleQuestionSession(t *testing.T) {
	server := interviewBackend(t)

	opts := gateway.DefaultOptions()
	opts.Token = func() string { return "test-token" }
	client, err := gateway.New(server.URL, opts)
	require.NoError(t, err)

	in := strings.NewReader("I would start from the access patterns.\n")
	var out bytes.Buffer

	cfg := config.Config{Verbose: true}
	err = runInterview(context.Background(), client, cfg, 42, false, in, &out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "QUESTION 1 OF 1")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Interview completed successfully!")
	assert.Contains(t, output, "INTERVIEW RESULTS")
	assert.Contains(t, output, "80.0%")
}

func TestRunInterview_ResultsOnly(t *testing.T) {
	server := interviewBackend(t)

	opts := gateway.DefaultOptions()
	opts.Token = func() string { return "test-token" }
	client, err := gateway.New(server.URL, opts)
	require.NoError(t, err)

	var out bytes.Buffer
	err = runInterview(context.Background(), client, config.Config{}, 42, true, strings.NewReader(""), &out)
	require.NoError(t, err)

	output := out.String()
	assert.NotContains(t, output, "QUESTION")
	assert.Contains(t, output, "INTERVIEW RESULTS")
	assert.Contains(t, output, "Solid structure.")
}

func TestRunInterview_InputClosedMidSession(t *testing.T) {
	server := interviewBackend(t)

	opts := gateway.DefaultOptions()
	opts.Token = func() string { return "test-token" }
	client, err := gateway.New(server.URL, opts)
	require.NoError(t, err)

	var out bytes.Buffer
	err = runInterview(context.Background(), client, config.Config{}, 42, false, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "resume later")
}
