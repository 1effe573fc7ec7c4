package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobboard-api",
	Short: "Job board backend",
	Long: `Job board backend: job postings, categories, companies, locations
and job applications behind a JWT-authenticated REST API.

	jobboard-api serve
	jobboard-api migrate
	jobboard-api create-admin --email admin@example.com`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
