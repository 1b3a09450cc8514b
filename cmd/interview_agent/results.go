package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/devmirai/interview-agent/internal/config"
	"github.com/devmirai/interview-agent/internal/observability"
)

var resultsCommand = &cobra.Command{
	Use:   "results",
	Short: "Show the results of a completed interview",
	RunE:  showResultsCmd,
}

var (
	resultsConfigPath      string
	resultsSessionID       int64
	resultsBaseURL         string
	resultsToken           string
	resultsCredentialsPath string
	resultsVerbose         bool
)

func init() {
	resultsCommand.Flags().StringVar(&resultsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	resultsCommand.Flags().Int64VarP(&resultsSessionID, "session", "s", 0, "Interview session (application) identifier")
	resultsCommand.Flags().StringVar(&resultsBaseURL, "base-url", "", "Backend base URL (defaults to DEVMIRAI_BASE_URL env var)")
	resultsCommand.Flags().StringVar(&resultsToken, "token", "", "Bearer token (defaults to DEVMIRAI_TOKEN env var or the stored login)")
	resultsCommand.Flags().StringVar(&resultsCredentialsPath, "credentials", "", "Path to the stored credentials file")
	resultsCommand.Flags().BoolVarP(&resultsVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = resultsCommand.MarkFlagRequired("session")

	rootCmd.AddCommand(resultsCommand)
}

func showResultsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	overrides := config.Config{}
	if cmd.Flags().Changed("base-url") {
		overrides.BaseURL = resultsBaseURL
	}
	if cmd.Flags().Changed("token") {
		overrides.Token = resultsToken
	}
	if cmd.Flags().Changed("credentials") {
		overrides.CredentialsPath = resultsCredentialsPath
	}

	cfg, err := loadMergedConfig(resultsConfigPath, overrides)
	if err != nil {
		return err
	}

	client, err := newGatewayClient(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)

	if resultsVerbose {
		session, err := client.GetSession(ctx, resultsSessionID)
		if err != nil {
			return err
		}
		printer.PrintSession(session)
	}

	evaluations, err := client.GetEvaluations(ctx, resultsSessionID)
	if err != nil {
		return err
	}
	printer.PrintResults(evaluations)
	return nil
}
