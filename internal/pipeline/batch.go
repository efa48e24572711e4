package pipeline

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultWorkers bounds how many resumes a batch analyzes at once
const DefaultWorkers = 4

// BatchInput is one resume document of a batch
type BatchInput struct {
	FileName string
	Format   types.DocumentFormat
	Data     []byte
}

// BatchResult pairs a batch input with its analysis or the error it produced
type BatchResult struct {
	FileName string
	Result   *types.AnalysisResult
	Err      error
}

// AnalyzeBatch analyzes every resume against the same job description in
// parallel. A resume that fails is reported in its BatchResult and does not
// stop the others. Results are ranked by match score, highest first; failures
// come last in input order. Only an invalid job description or a cancelled
// context fails the whole batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []BatchInput, jobText string, workers int) ([]BatchResult, error) {
	if err := a.checkJobDescription(jobText); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]BatchResult, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := a.Analyze(gCtx, in.Data, in.Format, in.FileName, jobText)
			if err != nil {
				err = fmt.Errorf("%s: %w", in.FileName, err)
			}
			// each goroutine owns its own slot
			results[i] = BatchResult{FileName: in.FileName, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	RankResults(results)
	return results, nil
}

// RankResults orders batch results by match score, highest first, keeping
// input order for ties and putting failures last.
func RankResults(results []BatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := results[i].Result, results[j].Result
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		}
		return ri.JDMatchScore > rj.JDMatchScore
	})
}
