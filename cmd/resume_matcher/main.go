// Package main provides the entry point for the resume matcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "resume_matcher",
		Short: "Resume to job description matcher",
		Long: "resume_matcher scores how well a resume matches a job description, rates how readable " +
			"the resume is for applicant tracking systems, and suggests improvements.",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCmd(), newAnalyzeCmd(), newValidateResultCmd())
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
