package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const resumeText = `Jane Doe
jane.doe@example.com | +1 555 123 4567

EXPERIENCE
Data Scientist at Acme Corp (2021 - 2024)
• Developed churn models that improved retention by 12%

SKILLS
Python, SQL, Machine Learning, Pandas, TensorFlow
`

type recordingPublisher struct {
	mu      sync.Mutex
	updates []Update
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, u Update) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, u)
	return p.err
}

func (p *recordingPublisher) statuses() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.updates))
	for _, u := range p.updates {
		out = append(out, u.Status)
	}
	return out
}

type memoryStore struct {
	mu      sync.Mutex
	reports []*types.Report
	err     error
}

func (s *memoryStore) SaveReport(_ context.Context, r *types.Report) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
	return r.ID, nil
}

func textLoader(objects map[string]string) func(context.Context, string) (ingestion.Document, error) {
	return func(_ context.Context, key string) (ingestion.Document, error) {
		text, ok := objects[key]
		if !ok {
			return ingestion.Document{}, errors.New("object not found")
		}
		return ingestion.FromText(text), nil
	}
}

func newTestWorker(t *testing.T, pub Publisher, store ReportSaver) (*Worker, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	w, err := NewWorker(WorkerOptions{
		Loader:    textLoader(map[string]string{"uploads/jane.txt": resumeText}),
		Store:     store,
		Publisher: pub,
		Logger:    zap.New(core),
	})
	require.NoError(t, err)
	return w, logs
}

func jobBody(t *testing.T, job Job) []byte {
	t.Helper()
	body, err := json.Marshal(job)
	require.NoError(t, err)
	return body
}

func TestNewWorker_RequiresDependencies(t *testing.T) {
	_, err := NewWorker(WorkerOptions{Publisher: &recordingPublisher{}})
	assert.Error(t, err)
	_, err = NewWorker(WorkerOptions{Loader: textLoader(nil)})
	assert.Error(t, err)
}

func TestProcess_Completed(t *testing.T) {
	pub := &recordingPublisher{}
	store := &memoryStore{}
	w, logs := newTestWorker(t, pub, store)

	report, err := w.Process(context.Background(), jobBody(t, Job{ID: "job-1", ObjectKey: "uploads/jane.txt", FileName: "Jane.txt"}))
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "Jane.txt", report.Source.FileName)
	require.Len(t, store.reports, 1)
	assert.Same(t, report, store.reports[0])

	assert.Equal(t, []string{StatusProcessing, StatusCompleted}, pub.statuses())
	done := pub.updates[1]
	assert.Equal(t, "job-1", done.JobID)
	assert.Equal(t, report.ID.String(), done.ReportID)
	assert.Equal(t, report.Score, done.Score)
	assert.Equal(t, string(report.Field), done.Field)

	assert.Equal(t, 1, logs.FilterMessage("job completed").Len())
}

func TestProcess_GeneratesJobID(t *testing.T) {
	pub := &recordingPublisher{}
	w, _ := newTestWorker(t, pub, nil)

	_, err := w.Process(context.Background(), jobBody(t, Job{ObjectKey: "uploads/jane.txt"}))
	require.NoError(t, err)
	require.Len(t, pub.updates, 2)
	_, parseErr := uuid.Parse(pub.updates[0].JobID)
	assert.NoError(t, parseErr)
	assert.Equal(t, pub.updates[0].JobID, pub.updates[1].JobID)
}

func TestProcess_InvalidMessages(t *testing.T) {
	pub := &recordingPublisher{}
	w, logs := newTestWorker(t, pub, nil)

	_, err := w.Process(context.Background(), []byte("{not json"))
	assert.True(t, errors.Is(err, ErrInvalidJob))
	assert.Empty(t, pub.statuses())

	_, err = w.Process(context.Background(), jobBody(t, Job{ID: "job-2"}))
	assert.True(t, errors.Is(err, ErrInvalidJob))
	assert.Equal(t, []string{StatusFailed}, pub.statuses())

	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestProcess_LoadFailure(t *testing.T) {
	pub := &recordingPublisher{}
	w, _ := newTestWorker(t, pub, nil)

	_, err := w.Process(context.Background(), jobBody(t, Job{ID: "job-3", ObjectKey: "missing.pdf"}))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidJob))
	assert.Equal(t, []string{StatusProcessing, StatusFailed}, pub.statuses())
}

func TestProcess_SaveFailure(t *testing.T) {
	pub := &recordingPublisher{}
	w, _ := newTestWorker(t, pub, &memoryStore{err: errors.New("db down")})

	_, err := w.Process(context.Background(), jobBody(t, Job{ID: "job-4", ObjectKey: "uploads/jane.txt"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, []string{StatusProcessing, StatusFailed}, pub.statuses())
}

func TestProcess_PublishErrorsAreLogged(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("channel closed")}
	w, logs := newTestWorker(t, pub, nil)

	_, err := w.Process(context.Background(), jobBody(t, Job{ID: "job-5", ObjectKey: "uploads/jane.txt"}))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("failed to publish update").Len())
}

type ackRecorder struct {
	mu       sync.Mutex
	acked    []uint64
	nacked   map[uint64]bool
	rejected []uint64
}

func newAckRecorder() *ackRecorder {
	return &ackRecorder{nacked: map[uint64]bool{}}
}

func (a *ackRecorder) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked = append(a.acked, tag)
	return nil
}

func (a *ackRecorder) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked[tag] = requeue
	return nil
}

func (a *ackRecorder) Reject(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rejected = append(a.rejected, tag)
	return nil
}

func TestRun_SettlesDeliveries(t *testing.T) {
	pub := &recordingPublisher{}
	w, _ := newTestWorker(t, pub, &memoryStore{})
	acks := newAckRecorder()

	deliveries := make(chan amqp.Delivery, 4)
	deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 1, Body: jobBody(t, Job{ID: "a", ObjectKey: "uploads/jane.txt"})}
	deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 2, Body: []byte("garbage")}
	deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 3, Body: jobBody(t, Job{ID: "c", ObjectKey: "missing.pdf"})}
	deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 4, Redelivered: true, Body: jobBody(t, Job{ID: "d", ObjectKey: "missing.pdf"})}
	close(deliveries)

	done := make(chan struct{})
	go func() {
		w.Run(context.Background(), deliveries, 2)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker pool did not stop after the delivery channel closed")
	}

	assert.Equal(t, []uint64{1}, acks.acked)
	assert.Equal(t, []uint64{2}, acks.rejected)
	assert.Equal(t, map[uint64]bool{3: true, 4: false}, acks.nacked)
}

func TestRun_StopsOnCancel(t *testing.T) {
	w, _ := newTestWorker(t, &recordingPublisher{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan amqp.Delivery)

	done := make(chan struct{})
	go func() {
		w.Run(ctx, deliveries, 3)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker pool did not stop after cancellation")
	}
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "report.job-1", RoutingKey("job-1"))
}
