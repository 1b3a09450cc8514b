package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/devmirai/interview-agent/internal/config"
	"github.com/devmirai/interview-agent/internal/observability"
)

var postingsCommand = &cobra.Command{
	Use:   "postings",
	Short: "List open positions accepting applications",
	RunE:  listPostingsCmd,
}

var (
	postingsConfigPath      string
	postingsBaseURL         string
	postingsToken           string
	postingsCredentialsPath string
)

func init() {
	postingsCommand.Flags().StringVar(&postingsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	postingsCommand.Flags().StringVar(&postingsBaseURL, "base-url", "", "Backend base URL (defaults to DEVMIRAI_BASE_URL env var)")
	postingsCommand.Flags().StringVar(&postingsToken, "token", "", "Bearer token (defaults to DEVMIRAI_TOKEN env var or the stored login)")
	postingsCommand.Flags().StringVar(&postingsCredentialsPath, "credentials", "", "Path to the stored credentials file")

	rootCmd.AddCommand(postingsCommand)
}

func listPostingsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	overrides := config.Config{}
	if cmd.Flags().Changed("base-url") {
		overrides.BaseURL = postingsBaseURL
	}
	if cmd.Flags().Changed("token") {
		overrides.Token = postingsToken
	}
	if cmd.Flags().Changed("credentials") {
		overrides.CredentialsPath = postingsCredentialsPath
	}

	cfg, err := loadMergedConfig(postingsConfigPath, overrides)
	if err != nil {
		return err
	}

	client, err := newGatewayClient(cfg)
	if err != nil {
		return err
	}

	postings, err := client.ListOpenPostings(ctx)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintPostings(postings)
	return nil
}
