package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devmirai/interview-agent/internal/config"
	"github.com/devmirai/interview-agent/internal/gateway"
	"github.com/devmirai/interview-agent/internal/observability"
	"github.com/devmirai/interview-agent/internal/session"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run a timed interview session",
	Long: `Loads the interview session, generating the question set first if the
application is still pending, and walks through the questions one at a time.
Each answer is sent to the evaluator; the session completes when the final
answer is accepted or the time budget runs out.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runInterviewCmd,
}

var (
	runConfigPath      string
	runSessionID       int64
	runBaseURL         string
	runToken           string
	runCredentialsPath string
	runDuration        int
	runDifficulty      int
	runRole            string
	runWantResults     bool
	runVerbose         bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().Int64VarP(&runSessionID, "session", "s", 0, "Interview session (application) identifier")
	runCommand.Flags().StringVar(&runBaseURL, "base-url", "", "Backend base URL (defaults to DEVMIRAI_BASE_URL env var)")
	runCommand.Flags().StringVar(&runToken, "token", "", "Bearer token (defaults to DEVMIRAI_TOKEN env var or the stored login)")
	runCommand.Flags().StringVar(&runCredentialsPath, "credentials", "", "Path to the stored credentials file")
	runCommand.Flags().IntVar(&runDuration, "duration", 0, "Interview time budget in seconds")
	runCommand.Flags().IntVar(&runDifficulty, "difficulty", 0, "Question difficulty for generated sessions (1-10)")
	runCommand.Flags().StringVar(&runRole, "role", "", "Role label used when the posting has none")
	runCommand.Flags().BoolVar(&runWantResults, "results", false, "Skip straight to the results view")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = runCommand.MarkFlagRequired("session")

	rootCmd.AddCommand(runCommand)
}

func runInterviewCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	overrides := config.Config{}
	if cmd.Flags().Changed("base-url") {
		overrides.BaseURL = runBaseURL
	}
	if cmd.Flags().Changed("token") {
		overrides.Token = runToken
	}
	if cmd.Flags().Changed("credentials") {
		overrides.CredentialsPath = runCredentialsPath
	}
	if cmd.Flags().Changed("duration") {
		overrides.DurationSeconds = runDuration
	}
	if cmd.Flags().Changed("difficulty") {
		overrides.Difficulty = runDifficulty
	}
	if cmd.Flags().Changed("role") {
		overrides.Role = runRole
	}
	if cmd.Flags().Changed("verbose") {
		overrides.Verbose = runVerbose
	}

	cfg, err := loadMergedConfig(runConfigPath, overrides)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := newGatewayClient(cfg)
	if err != nil {
		return err
	}

	return runInterview(ctx, client, cfg, runSessionID, runWantResults, os.Stdin, os.Stdout)
}

// cliNavigator routes completion and failure to the terminal: results are
// fetched and rendered in place, dashboard exits are just a pointer back to
// the postings list.
type cliNavigator struct {
	client  *gateway.Client
	printer *observability.Printer
	out     io.Writer
}

func (n *cliNavigator) ShowResults(sessionID int64) {
	evaluations, err := n.client.GetEvaluations(context.Background(), sessionID)
	if err != nil {
		fmt.Fprintf(n.out, "✖ Error loading interview results: %v\n", err)
		return
	}
	n.printer.PrintResults(evaluations)
}

func (n *cliNavigator) ExitToDashboard() {
	fmt.Fprintln(n.out, "Browse open positions with 'interview_agent postings'.")
}

func runInterview(ctx context.Context, client *gateway.Client, cfg config.Config, sessionID int64, wantResults bool, in io.Reader, out io.Writer) error {
	printer := observability.NewPrinter(out)

	ctrl, err := session.New(session.Options{
		Gateway:       client,
		Notifier:      observability.NewMessenger(out),
		Navigator:     &cliNavigator{client: client, printer: printer, out: out},
		BudgetSeconds: cfg.DurationSeconds,
		Difficulty:    cfg.Difficulty,
		RoleLabel:     cfg.Role,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.LoadSession(ctx, sessionID, wantResults); err != nil {
		return err
	}

	state := ctrl.Snapshot()
	if cfg.Verbose {
		fmt.Fprintf(out, "Attempt %s\n", ctrl.AttemptID())
		printer.PrintSession(state.Session)
	}

	if state.Phase == session.PhaseResults {
		printer.PrintResults(state.Evaluations)
		return nil
	}
	if len(state.Questions) == 0 {
		return fmt.Errorf("session %d has no questions", sessionID)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		state = ctrl.Snapshot()
		switch state.Phase {
		case session.PhaseActive:
			question, ok := state.CurrentQuestion()
			if !ok {
				return fmt.Errorf("no current question at index %d", state.Index)
			}
			printer.PrintQuestion(question, state.Index, len(state.Questions), state.Remaining)
			fmt.Fprint(out, "> ")

			if !scanner.Scan() {
				// Input closed mid-session; leave the session resumable.
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read answer: %w", err)
				}
				fmt.Fprintln(out, "\nInput closed; resume later with the same session id.")
				return nil
			}

			ctrl.SetAnswer(scanner.Text())
			// Submission failures are notified and retried on the next pass.
			_ = ctrl.SubmitAnswer(ctx)

		case session.PhaseCompleting:
			<-ctrl.Done()

		case session.PhaseResults:
			return nil

		default:
			return fmt.Errorf("session ended in unexpected state %q", state.Phase)
		}
	}
}
