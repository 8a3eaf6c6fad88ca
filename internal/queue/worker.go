package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/logger"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// ErrInvalidJob marks a message that can never be processed.
var ErrInvalidJob = errors.New("invalid job message")

// Publisher sends status updates.
type Publisher interface {
	Publish(ctx context.Context, update Update) error
}

// ReportSaver persists finished reports.
type ReportSaver interface {
	SaveReport(ctx context.Context, report *types.Report) (uuid.UUID, error)
}

// WorkerOptions wires a Worker.
type WorkerOptions struct {
	Analyzer  *pipeline.Analyzer
	Loader    pipeline.Loader
	Store     ReportSaver
	Publisher Publisher
	Logger    *zap.Logger
}

// Worker turns job messages into stored reports.
type Worker struct {
	analyzer  *pipeline.Analyzer
	load      pipeline.Loader
	store     ReportSaver
	publisher Publisher
	log       *zap.Logger
	now       func() time.Time
}

// NewWorker validates opts and builds a Worker. Store is optional; without it
// reports are only announced.
func NewWorker(opts WorkerOptions) (*Worker, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("worker requires a loader")
	}
	if opts.Publisher == nil {
		return nil, fmt.Errorf("worker requires a publisher")
	}
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = pipeline.Default()
	}
	return &Worker{
		analyzer:  analyzer,
		load:      opts.Loader,
		store:     opts.Store,
		publisher: opts.Publisher,
		log:       logger.WithFields(opts.Logger),
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// Process handles one message body. It returns ErrInvalidJob for bodies that
// should be dropped rather than retried.
func (w *Worker) Process(ctx context.Context, body []byte) (*types.Report, error) {
	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		w.log.Warn("dropping malformed job", zap.Error(err), zap.String("body", logger.TruncateForLog(string(body), 200)))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	if job.ObjectKey == "" {
		w.log.Warn("dropping job without object key", zap.String("job_id", job.ID))
		w.publish(ctx, job, StatusFailed, "job has no object key", nil)
		return nil, fmt.Errorf("%w: missing object_key", ErrInvalidJob)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	log := w.log.With(zap.String("job_id", job.ID), zap.String("object_key", job.ObjectKey))
	log.Info("processing job")
	w.publish(ctx, job, StatusProcessing, "analysis started", nil)

	doc, err := w.load(ctx, job.ObjectKey)
	if err != nil {
		log.Warn("failed to load document", zap.Error(err))
		w.publish(ctx, job, StatusFailed, "document could not be loaded", nil)
		return nil, fmt.Errorf("failed to load %s: %w", job.ObjectKey, err)
	}
	if job.FileName != "" {
		doc.Source.FileName = job.FileName
	}

	report := w.analyzer.Analyze(doc)
	if w.store != nil {
		if _, err := w.store.SaveReport(ctx, report); err != nil {
			log.Error("failed to save report", zap.Error(err))
			w.publish(ctx, job, StatusFailed, "report could not be saved", nil)
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
	}

	log.Info("job completed",
		zap.String(logger.FieldReportID, report.ID.String()),
		zap.Int("score", report.Score),
		zap.String("field", string(report.Field)),
	)
	w.publish(ctx, job, StatusCompleted, "analysis completed", report)
	return report, nil
}

func (w *Worker) publish(ctx context.Context, job Job, status, message string, report *types.Report) {
	update := Update{
		JobID:     job.ID,
		ObjectKey: job.ObjectKey,
		Status:    status,
		Message:   message,
		Timestamp: w.now(),
	}
	if report != nil {
		update.ReportID = report.ID.String()
		update.Score = report.Score
		update.Field = string(report.Field)
	}
	if err := w.publisher.Publish(ctx, update); err != nil {
		w.log.Warn("failed to publish update", zap.String("status", status), zap.Error(err))
	}
}

// Handle processes one delivery and settles it. Invalid messages are
// rejected without requeue; failed analyses are requeued once.
func (w *Worker) Handle(ctx context.Context, d amqp.Delivery) {
	_, err := w.Process(ctx, d.Body)
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			w.log.Warn("failed to ack delivery", zap.Error(ackErr))
		}
	case errors.Is(err, ErrInvalidJob):
		if rejErr := d.Reject(false); rejErr != nil {
			w.log.Warn("failed to reject delivery", zap.Error(rejErr))
		}
	default:
		if nackErr := d.Nack(false, !d.Redelivered); nackErr != nil {
			w.log.Warn("failed to nack delivery", zap.Error(nackErr))
		}
	}
}

// Run starts n consumers over deliveries and blocks until the channel closes
// or ctx is cancelled.
func (w *Worker) Run(ctx context.Context, deliveries <-chan amqp.Delivery, n int) {
	n = max(1, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			w.log.Debug("consumer started", zap.Int("consumer", i+1))
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					w.Handle(ctx, d)
				}
			}
		}()
	}
	wg.Wait()
}
