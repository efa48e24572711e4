package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes POST /analyze, POST /analyze/text and GET /health.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			// Only override if the flag was explicitly set
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var logger *log.Logger
			if cfg.Verbose {
				logger = log.New(os.Stderr, "", log.LstdFlags)
			}
			analyzer, err := newAnalyzer(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to create analyzer: %w", err)
			}

			srv := server.New(server.Config{
				Port:              cfg.Port,
				MaxUploadBytes:    cfg.MaxUploadBytes,
				CORSAllowedOrigin: cfg.CORSAllowedOrigin,
				RateLimit:         ratelimit.LoadConfig(),
			}, analyzer)
			return srv.Start()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log stage timings for every analysis")
	return cmd
}
