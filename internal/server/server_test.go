package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/config"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/db"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/server/ratelimit"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555 123 4567 | linkedin.com/in/janedoe

SUMMARY
Data scientist with five years of experience.

EXPERIENCE
Data Scientist, Acme Corp (2021 - 2024)
• Developed churn models that improved retention by 12%
• Led a team of four analysts

EDUCATION
Master of Science in Statistics, State University

SKILLS
Python, SQL, Machine Learning, Pandas, TensorFlow
`

// memoryStore is an in-memory ReportStore.
type memoryStore struct {
	mu      sync.Mutex
	reports map[uuid.UUID]*types.Report
	pingErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{reports: make(map[uuid.UUID]*types.Report)}
}

func (m *memoryStore) Ping(context.Context) error { return m.pingErr }

func (m *memoryStore) SaveReport(_ context.Context, report *types.Report) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.ID] = report
	return report.ID, nil
}

func (m *memoryStore) GetReport(_ context.Context, id uuid.UUID) (*types.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	report, ok := m.reports[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return report, nil
}

func (m *memoryStore) ListReports(_ context.Context, limit int) ([]db.ReportSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.ReportSummary, 0, len(m.reports))
	for _, r := range m.reports {
		if len(out) == limit {
			break
		}
		out = append(out, db.ReportSummary{ID: r.ID, Score: r.Score, Field: r.Field.String()})
	}
	return out, nil
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.RateLimit == nil {
		opts.RateLimit = ratelimit.NewConfig(false, 60, 10, "")
	}
	s := New(opts)
	t.Cleanup(s.Close)
	return s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func multipartRequest(t *testing.T, path, field string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	t.Run("without database", func(t *testing.T) {
		s := newTestServer(t, Options{})
		rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "disabled", body["database"])
	})

	t.Run("database down", func(t *testing.T) {
		store := newMemoryStore()
		store.pingErr = errors.New("connection refused")
		s := newTestServer(t, Options{Store: store})
		rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unavailable", decodeBody[map[string]string](t, rec)["database"])
	})
}

func TestAnalyze_JSON(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/analyze", AnalyzeRequest{
		Text:     sampleResume,
		Links:    []string{"https://github.com/janedoe"},
		FileName: "jane.txt",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decodeBody[types.Report](t, rec)
	assert.Equal(t, "jane.txt", report.Source.FileName)
	assert.Equal(t, types.Some("jane.doe@example.com"), report.Info.Email)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.Equal(t, report.Score, report.Breakdown.TotalScore)
}

func TestAnalyze_ValidationErrors(t *testing.T) {
	s := newTestServer(t, Options{})
	h := s.Handler()

	t.Run("file name too long", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{Text: sampleResume, FileName: strings.Repeat("x", 256)})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "file_name")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank link", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{Text: sampleResume, Links: []string{""}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "links")
	})
}

func TestAnalyze_EmptyTextScoresLikeThePipeline(t *testing.T) {
	s := newTestServer(t, Options{})
	want := pipeline.Analyze(ingestion.FromText(""))

	for name, body := range map[string]any{
		"empty text":   AnalyzeRequest{Text: ""},
		"missing text": map[string]string{"file_name": "blank.txt"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, s.Handler(), http.MethodPost, "/analyze", body)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			report := decodeBody[types.Report](t, rec)
			assert.Equal(t, want.Score, report.Score)
			assert.Equal(t, want.Rating, report.Rating)
		})
	}
}

func TestAnalyze_Upload(t *testing.T) {
	s := newTestServer(t, Options{})
	h := s.Handler()

	t.Run("text file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, multipartRequest(t, "/analyze", "file", map[string]string{"resume.txt": sampleResume}))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		report := decodeBody[types.Report](t, rec)
		assert.Equal(t, "resume.txt", report.Source.FileName)
		assert.Len(t, report.Source.ContentHash, 64)
	})

	t.Run("unsupported type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, multipartRequest(t, "/analyze", "file", map[string]string{"photo.png": "\x89PNG\r\n\x1a\n0000"}))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("empty file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, multipartRequest(t, "/analyze", "file", map[string]string{"empty.txt": ""}))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("missing file part", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, multipartRequest(t, "/analyze", "other", map[string]string{"resume.txt": sampleResume}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnalyze_UploadTooLarge(t *testing.T) {
	s := newTestServer(t, Options{MaxUploadBytes: 64})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/analyze", AnalyzeRequest{Text: sampleResume})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyze_SaveAndFetch(t *testing.T) {
	store := newMemoryStore()
	s := newTestServer(t, Options{Store: store})
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/analyze?save=true", AnalyzeRequest{Text: sampleResume})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved := decodeBody[types.Report](t, rec)
	require.Len(t, store.reports, 1)

	rec = doJSON(t, h, http.MethodGet, "/reports/"+saved.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, saved.Score, decodeBody[types.Report](t, rec).Score)

	rec = doJSON(t, h, http.MethodGet, "/reports?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[struct {
		Reports []db.ReportSummary `json:"reports"`
		Count   int                `json:"count"`
	}](t, rec)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, saved.ID, list.Reports[0].ID)
}

func TestAnalyze_SaveWithoutStore(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/analyze?save=true", AnalyzeRequest{Text: sampleResume})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReports_Errors(t *testing.T) {
	s := newTestServer(t, Options{Store: newMemoryStore()})
	h := s.Handler()

	assert.Equal(t, http.StatusBadRequest, doJSON(t, h, http.MethodGet, "/reports/not-a-uuid", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, h, http.MethodGet, "/reports/"+uuid.NewString(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, h, http.MethodGet, "/reports?limit=abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, h, http.MethodGet, "/reports?limit=0", nil).Code)

	noStore := newTestServer(t, Options{}).Handler()
	assert.Equal(t, http.StatusServiceUnavailable, doJSON(t, noStore, http.MethodGet, "/reports", nil).Code)
}

func TestDetectField(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/detect-field", TextRequest{Text: sampleResume})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, string(types.FieldDataScience), body["field"])
	assert.NotEmpty(t, body["skills"])
}

func TestValidateFormat(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/validate-format", TextRequest{Text: "Jane Doe\nEngineer"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[ValidateFormatResponse](t, rec)
	assert.False(t, body.Valid)
	require.NotEmpty(t, body.Details)
	assert.Equal(t, types.WarningShortContent, body.Details[0].Type)
	assert.Len(t, body.Warnings, len(body.Details))
}

func TestAnalyzeStream(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, multipartRequest(t, "/analyze/stream", "files", map[string]string{
		"jane.txt":  sampleResume,
		"image.png": "\x89PNG\r\n\x1a\n0000",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: step"))
	assert.Contains(t, body, "event: results")
	assert.Contains(t, body, `"error":"unsupported file type`)
	assert.Contains(t, body, "event: complete")
	assert.Less(t, strings.Index(body, "event: results"), strings.Index(body, "event: complete"))
}

func TestAnalyzeStream_ReportsDuplicates(t *testing.T) {
	type part struct{ name, content string }
	parts := []part{
		{"jane.txt", sampleResume},
		{"jane.txt", "John Smith\njohn@mail.com"},
		{"copy.txt", sampleResume},
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		w, err := mw.CreateFormFile("files", p.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/analyze/stream", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	s := newTestServer(t, Options{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "event: step"))

	_, after, ok := strings.Cut(body, "event: results\ndata: ")
	require.True(t, ok, body)
	payload, _, _ := strings.Cut(after, "\n")
	var results []StreamResult
	require.NoError(t, json.Unmarshal([]byte(payload), &results))

	require.Len(t, results, 3)
	assert.Equal(t, "jane.txt", results[0].FileName)
	assert.NotNil(t, results[0].Report)
	assert.Equal(t, StreamResult{FileName: "jane.txt", Error: "duplicate file name"}, results[1])
	assert.Equal(t, StreamResult{FileName: "copy.txt", Error: "duplicate of jane.txt"}, results[2])
}

func TestAnalyzeStream_RequiresFiles(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := doJSON(t, s.Handler(), http.MethodPost, "/analyze/stream", AnalyzeRequest{Text: sampleResume})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, Options{RateLimit: ratelimit.NewConfig(true, 4, 4, "")})
	h := s.Handler()

	first := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{Text: sampleResume})
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := doJSON(t, h, http.MethodPost, "/analyze", AnalyzeRequest{Text: sampleResume})
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	// Health checks are never limited.
	for range 10 {
		assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/health", nil).Code)
	}
}

func TestAuth(t *testing.T) {
	jwtConfig, err := config.NewJWTConfig("a-test-secret-of-32-characters!!", 1)
	require.NoError(t, err)
	s := newTestServer(t, Options{JWT: jwtConfig})
	h := s.Handler()

	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/health", nil).Code)

	rec := doJSON(t, h, http.MethodPost, "/detect-field", TextRequest{Text: sampleResume})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := NewJWTService(jwtConfig).GenerateToken("ci-runner")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/detect-field", strings.NewReader(`{"text":"Python developer"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := doJSON(t, s.Handler(), http.MethodOptions, "/analyze", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newTestServer(t, Options{Logger: zap.New(core)})
	doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestExtractClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	assert.Equal(t, "10.0.0.7", extractClientID(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", extractClientID(req))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.JWTSecret = "a-test-secret-of-32-characters!!"

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8080, opts.Port)
	assert.Equal(t, int64(10<<20), opts.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, opts.ReadTimeout)
	require.NotNil(t, opts.JWT)
	assert.True(t, opts.RateLimit.Enabled)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	s := New(Options{Port: 0, RateLimit: ratelimit.NewConfig(false, 60, 10, "")})
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
