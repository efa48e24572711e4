package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/export"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// analyzeEntry is one element of the analyze command's JSON output
type analyzeEntry struct {
	ID       uuid.UUID             `json:"id"`
	Rank     int                   `json:"rank"`
	FileName string                `json:"fileName"`
	Metadata *ingestion.Metadata   `json:"metadata,omitempty"`
	Result   *types.AnalysisResult `json:"result,omitempty"`
	Error    string                `json:"error,omitempty"`
}

type analyzeOptions struct {
	configPath string
	resumes    []string
	job        string
	format     string
	out        string
	xlsx       string
	workers    int
	validate   bool
	verbose    bool
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one or more resumes against a job description",
		Long: `Runs the matching pipeline on every --resume against the --job description and writes
the results as a JSON array ranked by match score. Resumes are analyzed in parallel; a resume
that cannot be read or decoded is reported in its entry without failing the others.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringArrayVarP(&opts.resumes, "resume", "r", nil, "Path to a resume file (pdf, docx, doc, txt); repeat for several")
	cmd.Flags().StringVarP(&opts.job, "job", "j", "", "Path to job description file (text or HTML)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Resume format, overriding detection from the file extension")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also write an XLSX report to this path")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", pipeline.DefaultWorkers, "Number of resumes analyzed in parallel")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Check every result against the built-in result schema before writing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed analysis and stage timings")

	if err := cmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// JSON goes to stdout unless --out is set; verbose output takes the other stream
	report := cmd.OutOrStdout()
	if opts.out == "" {
		report = cmd.ErrOrStderr()
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(report, "", 0)
	}
	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	jobText, err := ingestion.ReadJobDescriptionFile(opts.job)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	inputs, metadata, err := readResumes(opts.resumes, opts.format)
	if err != nil {
		return err
	}

	results, err := analyzer.AnalyzeBatch(ctx, inputs, jobText, opts.workers)
	if err != nil {
		return err
	}

	entries := make([]analyzeEntry, len(results))
	failed := 0
	for i, r := range results {
		entries[i] = analyzeEntry{
			ID:       uuid.New(),
			Rank:     i + 1,
			FileName: r.FileName,
			Metadata: metadata[r.FileName],
			Result:   r.Result,
		}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
			failed++
			continue
		}
		if opts.validate {
			if err := schemas.ValidateValue(r.Result); err != nil {
				return fmt.Errorf("result for %s does not match schema: %w", r.FileName, err)
			}
		}
	}

	if err := writeEntries(cmd.OutOrStdout(), opts.out, entries); err != nil {
		return err
	}

	if opts.xlsx != "" {
		path, err := export.SaveExcel(export.Report{
			JobTitle:  firstLine(jobText),
			Generated: time.Now(),
			Results:   results,
		}, opts.xlsx)
		if err != nil {
			return fmt.Errorf("failed to write XLSX report: %w", err)
		}
		_, _ = fmt.Fprintf(report, "XLSX report written to %s\n", path)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(report)
		for _, r := range results {
			printer.PrintAnalysis(r.Result)
		}
		printer.PrintRanking(results)
	}

	if failed == len(results) {
		return fmt.Errorf("all %d resumes failed to analyze", failed)
	}
	return nil
}

// readResumes loads every resume file. Format detection failures are kept as
// empty formats so the pipeline reports them per file.
func readResumes(paths []string, declared string) ([]pipeline.BatchInput, map[string]*ingestion.Metadata, error) {
	var declaredFormat types.DocumentFormat
	if declared != "" {
		format, err := ingestion.ParseFormat(declared)
		if err != nil {
			return nil, nil, err
		}
		declaredFormat = format
	}

	inputs := make([]pipeline.BatchInput, 0, len(paths))
	metadata := make(map[string]*ingestion.Metadata, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read resume %s: %w", path, err)
		}

		format := declaredFormat
		if format == "" {
			format, _ = ingestion.DetectFormat("", path)
		}

		name := filepath.Base(path)
		if _, dup := metadata[name]; dup {
			name = path
		}
		meta := ingestion.NewMetadata(data, &types.ExtractedDocument{FileName: name, Format: format})
		metadata[name] = meta

		inputs = append(inputs, pipeline.BatchInput{FileName: name, Format: format, Data: data})
	}
	return inputs, metadata, nil
}

func writeEntries(stdout io.Writer, path string, entries []analyzeEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}
