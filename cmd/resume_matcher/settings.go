package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// loadSettings reads the config file (flag first, then RESUME_MATCHER_CONFIG),
// applies environment overrides and fills defaults. Flags are applied by the
// caller afterwards.
func loadSettings(configPath string) (config.Config, error) {
	var cfg config.Config

	if configPath == "" {
		configPath = os.Getenv(config.EnvConfigPath)
	}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg.MergeWithDefaults(config.Config{}), nil
}

// newAnalyzer builds an analyzer from validated settings.
func newAnalyzer(cfg config.Config, logger *log.Logger) (*pipeline.Analyzer, error) {
	tables := vocabulary.Default()
	if cfg.VocabularyFile != "" {
		ext, err := vocabulary.LoadExtension(cfg.VocabularyFile)
		if err != nil {
			return nil, err
		}
		tables = tables.Merge(ext)
	}
	if logger != nil {
		logger.Printf("[config] loaded %s", tables)
	}

	return pipeline.NewAnalyzer(pipeline.Options{
		Tables:                  tables,
		TopKeywords:             cfg.TopKeywords,
		MinJobDescriptionLength: cfg.MinJobDescriptionLength,
		Logger:                  logger,
	}), nil
}
