package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Question Bank API
// @version 1.0
// @description CRUD service for quiz questions (multiple choice, short answer, SQL), their options, rubrics and shared setups.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "questionbank",
		Short:        "Question bank HTTP service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "run the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "reset-db",
			Short: "drop and recreate every table",
			RunE:  runResetDB,
		},
	)
	return root
}
