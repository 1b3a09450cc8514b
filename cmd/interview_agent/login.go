package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devmirai/interview-agent/internal/auth"
	"github.com/devmirai/interview-agent/internal/config"
)

var loginCommand = &cobra.Command{
	Use:   "login",
	Short: "Store backend credentials for later commands",
	Long: `Stores the bearer token (and optionally your profile) so run, results
and postings can authenticate without --token. The token itself comes from the
devmirai web login.`,
	RunE: loginCmd,
}

var (
	loginToken           string
	loginCredentialsPath string
	loginName            string
	loginEmail           string
)

func init() {
	loginCommand.Flags().StringVar(&loginToken, "token", "", "Bearer token issued by the backend (defaults to DEVMIRAI_TOKEN env var)")
	loginCommand.Flags().StringVar(&loginCredentialsPath, "credentials", "", "Path to the stored credentials file")
	loginCommand.Flags().StringVar(&loginName, "name", "", "Candidate name to store alongside the token")
	loginCommand.Flags().StringVar(&loginEmail, "email", "", "Candidate email to store alongside the token")

	rootCmd.AddCommand(loginCommand)
}

func loginCmd(_ *cobra.Command, _ []string) error {
	token := loginToken
	if token == "" {
		token = os.Getenv("DEVMIRAI_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("--token or the DEVMIRAI_TOKEN environment variable is required")
	}
	if auth.Expired(token, time.Now()) {
		return fmt.Errorf("token is already expired")
	}

	store, err := credentialsStore(config.Config{CredentialsPath: loginCredentialsPath})
	if err != nil {
		return err
	}

	creds := &auth.Credentials{
		Token: token,
		Profile: auth.Profile{
			Name:  loginName,
			Email: loginEmail,
		},
	}
	if err := store.Save(creds); err != nil {
		return err
	}

	fmt.Println("Logged in.")
	return nil
}
