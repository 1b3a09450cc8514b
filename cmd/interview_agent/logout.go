package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devmirai/interview-agent/internal/config"
)

var logoutCommand = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credentials",
	RunE:  logoutCmd,
}

var logoutCredentialsPath string

func init() {
	logoutCommand.Flags().StringVar(&logoutCredentialsPath, "credentials", "", "Path to the stored credentials file")

	rootCmd.AddCommand(logoutCommand)
}

func logoutCmd(_ *cobra.Command, _ []string) error {
	store, err := credentialsStore(config.Config{CredentialsPath: logoutCredentialsPath})
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}
