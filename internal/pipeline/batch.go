package pipeline

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/logger"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// DefaultConcurrency is the number of documents analyzed at once when
// BatchOptions leaves it unset.
const DefaultConcurrency = 4

// Progress steps reported by RunBatch.
const (
	StepLoad     = "load"
	StepAnalyze  = "analyze"
	CategoryFile = "file"
)

// ProgressEvent reports the outcome of one batch step.
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Path     string `json:"path,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback receives progress events. It may be called from several
// goroutines at once.
type ProgressCallback func(event ProgressEvent)

// Loader reads a document for a path.
type Loader func(ctx context.Context, path string) (ingestion.Document, error)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	Concurrency int
	Loader      Loader
	Logger      *zap.Logger
	OnProgress  ProgressCallback
}

// BatchResult is the outcome for one input path. Exactly one of Report and
// Err is set.
type BatchResult struct {
	Path   string
	Report *types.Report
	Err    error
}

// RunBatch analyzes every path concurrently with the built-in taxonomy.
func RunBatch(ctx context.Context, paths []string, opts BatchOptions) ([]BatchResult, error) {
	return defaultAnalyzer.RunBatch(ctx, paths, opts)
}

// RunBatch analyzes every path concurrently. Results keep the input order.
// A document that fails to load is recorded in its result and does not stop
// the batch; cancelling ctx stops documents that have not started yet.
func (a *Analyzer) RunBatch(ctx context.Context, paths []string, opts BatchOptions) ([]BatchResult, error) {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	load := opts.Loader
	if load == nil {
		load = ingestion.FromFile
	}
	log := logger.WithFields(opts.Logger, zap.Int("documents", len(paths)))

	results := make([]BatchResult, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i] = BatchResult{Path: path, Err: err}
				return err
			}
			results[i] = a.analyzePath(gCtx, path, load, log, opts.OnProgress)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch cancelled: %w", err)
	}
	return results, nil
}

func (a *Analyzer) analyzePath(ctx context.Context, path string, load Loader, log *zap.Logger, onProgress ProgressCallback) BatchResult {
	emit := func(step, msg string, content any) {
		if onProgress != nil {
			onProgress(ProgressEvent{Step: step, Category: CategoryFile, Message: msg, Path: path, Content: content})
		}
	}

	doc, err := load(ctx, path)
	if err != nil {
		log.Warn("failed to load document", zap.String(logger.FieldFile, path), zap.Error(err))
		emit(StepLoad, fmt.Sprintf("failed to load %s: %v", path, err), nil)
		return BatchResult{Path: path, Err: err}
	}

	report := a.Analyze(doc)
	log.Debug("analyzed document",
		append(logger.DocumentFields(path, doc.Source.ContentHash),
			zap.Int("score", report.Score),
			zap.String("field", report.Field.String()))...)
	emit(StepAnalyze, fmt.Sprintf("%s scored %d/100", path, report.Score), report)
	return BatchResult{Path: path, Report: report}
}

// Ranked returns the successful results ordered by score, best first. Ties
// keep input order.
func Ranked(results []BatchResult) []BatchResult {
	out := make([]BatchResult, 0, len(results))
	for _, r := range results {
		if r.Report != nil {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Report.Score > out[j].Report.Score
	})
	return out
}
