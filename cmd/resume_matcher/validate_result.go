package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
	schemafiles "github.com/jonathan/resume-matcher/schemas"
)

func newValidateResultCmd() *cobra.Command {
	var (
		input      string
		schemaPath string
	)

	cmd := &cobra.Command{
		Use:   "validate-result",
		Short: "Validate emitted analysis results against the result JSON Schema",
		Long: `Validates a file written by "analyze", a single analysis result, or an
{"id", "result"} response body from the HTTP API. By default the schema built into the binary
is used; --schema points at a schema file instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", input, err)
			}

			documents, err := splitResults(data)
			if err != nil {
				return err
			}

			schema := schemafiles.AnalysisResult
			if schemaPath != "" {
				resolved := schemas.ResolveSchemaPath(schemaPath)
				if resolved == "" {
					return fmt.Errorf("schema not found: %s", schemaPath)
				}
				content, err := os.ReadFile(resolved)
				if err != nil {
					return fmt.Errorf("failed to read schema: %w", err)
				}
				schema = string(content)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, doc := range documents {
				err := schemas.ValidateJSONString(schema, string(doc.raw))
				if err == nil {
					_, _ = fmt.Fprintf(out, "Validation passed: %s\n", doc.label)
					continue
				}
				var validationErr *schemas.ValidationError
				if !errors.As(err, &validationErr) {
					return err
				}
				failed++
				_, _ = fmt.Fprintf(out, "Validation failed: %s\n%s", doc.label, validationErr.Error())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d results failed validation", failed, len(documents))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "in", "i", "", "Path to the JSON file to validate (required)")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to a JSON Schema file (defaults to the built-in "+schemafiles.AnalysisResultPath+")")
	if err := cmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	return cmd
}

type resultDocument struct {
	label string
	raw   json.RawMessage
}

// splitResults accepts the analyze command's array, a {"result": ...} wrapper
// or a bare result and returns the results to validate.
func splitResults(data []byte) ([]resultDocument, error) {
	var entries []struct {
		FileName string          `json:"fileName"`
		Result   json.RawMessage `json:"result"`
		Error    string          `json:"error"`
	}
	if err := json.Unmarshal(data, &entries); err == nil {
		docs := make([]resultDocument, 0, len(entries))
		for i, e := range entries {
			// failed analyses carry no result
			if len(e.Result) == 0 || string(e.Result) == "null" {
				continue
			}
			label := e.FileName
			if label == "" {
				label = fmt.Sprintf("entry %d", i+1)
			}
			docs = append(docs, resultDocument{label: label, raw: e.Result})
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("no analysis results found")
		}
		return docs, nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if wrapped, ok := object["result"]; ok {
		return []resultDocument{{label: "result", raw: wrapped}}, nil
	}
	return []resultDocument{{label: "result", raw: data}}, nil
}
