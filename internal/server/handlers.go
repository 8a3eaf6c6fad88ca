package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/db"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/ingestion"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/logger"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/pipeline"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/server/middleware"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
	"github.com/Tharuni-2310/ProFile-Analyser/internal/validation"
)

// AnalyzeRequest carries résumé text that was extracted by the client. Empty
// text is analyzed like any other document and scores low.
type AnalyzeRequest struct {
	Text     string   `json:"text"`
	Links    []string `json:"links" validate:"max=100,dive,required"`
	FileName string   `json:"file_name" validate:"max=255"`
}

// TextRequest is the body of the detect-field and validate-format endpoints.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

// ValidateFormatResponse lists the layout warnings for a text.
type ValidateFormatResponse struct {
	Valid    bool                  `json:"valid"`
	Warnings []string              `json:"warnings"`
	Details  []types.FormatWarning `json:"details"`
}

// StreamResult is the per-file outcome sent in the final stream event.
type StreamResult struct {
	FileName string        `json:"file_name"`
	Report   *types.Report `json:"report,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "disabled"}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.Warn("database ping failed", zap.Error(err))
			status["status"] = "degraded"
			status["database"] = "unavailable"
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// handleAnalyze accepts either a JSON AnalyzeRequest or a multipart upload
// with a "file" part. ?save=true persists the report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	save := r.URL.Query().Get("save") == "true"
	if save && s.store == nil {
		s.writeError(w, &ErrStoreUnavailable{})
		return
	}

	doc, err := s.documentFromRequest(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	report := s.analyzer.Analyze(doc)
	log := logger.WithFields(s.logger, logger.DocumentFields(doc.Source.FileName, doc.Source.ContentHash)...)
	if clientID, err := middleware.GetClientID(r); err == nil {
		log = log.With(zap.String("client", clientID))
	}

	if save {
		id, err := s.store.SaveReport(r.Context(), report)
		if err != nil {
			s.writeError(w, fmt.Errorf("failed to save report: %w", err))
			return
		}
		log = log.With(zap.String(logger.FieldReportID, id.String()))
	}
	log.Info("analyzed document", zap.Int("score", report.Score), zap.String("field", report.Field.String()))

	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) documentFromRequest(w http.ResponseWriter, r *http.Request) (ingestion.Document, error) {
	if isMultipart(r) {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
		if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
			return ingestion.Document{}, uploadError(err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return ingestion.Document{}, &ErrValidation{Field: "file", Message: "a file upload is required"}
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return ingestion.Document{}, fmt.Errorf("failed to read upload: %w", err)
		}
		return ingestion.FromBytes(header.Filename, header.Header.Get("Content-Type"), data)
	}

	var req AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		return ingestion.Document{}, err
	}
	doc := ingestion.FromText(req.Text, req.Links...)
	doc.Source.FileName = req.FileName
	return doc, nil
}

func (s *Server) handleDetectField(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.DetectField(ingestion.FromText(req.Text)))
}

func (s *Server) handleValidateFormat(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	details := validation.CheckFormat(req.Text)
	if details == nil {
		details = []types.FormatWarning{}
	}
	messages := make([]string, len(details))
	for i, d := range details {
		messages[i] = d.Details
	}
	s.jsonResponse(w, http.StatusOK, ValidateFormatResponse{
		Valid:    len(details) == 0,
		Warnings: messages,
		Details:  details,
	})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrStoreUnavailable{})
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	report, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "report not found")
			return
		}
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrStoreUnavailable{})
		return
	}
	limit := db.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	reports, err := s.store.ListReports(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

// handleAnalyzeStream analyzes every "files" part of a multipart upload and
// streams progress as server-sent events. A "results" event lists the reports
// ranked by score, then the failures, then repeated uploads, before the
// "complete" event. An upload repeats when its name or content was seen before.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	if !isMultipart(r) {
		s.writeError(w, &ErrValidation{Field: "files", Message: "multipart upload required"})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.writeError(w, uploadError(err))
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.writeError(w, &ErrValidation{Field: "files", Message: "at least one file is required"})
		return
	}

	type upload struct {
		data      []byte
		mediaType string
	}
	uploads := make(map[string]upload, len(headers))
	names := make([]string, 0, len(headers))
	byHash := make(map[string]string, len(headers))
	var duplicates []StreamResult
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			s.writeError(w, fmt.Errorf("failed to open upload %s: %w", h.Filename, err))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.writeError(w, fmt.Errorf("failed to read upload %s: %w", h.Filename, err))
			return
		}

		hash := ingestion.ContentHash(data)
		if first, ok := byHash[hash]; ok {
			duplicates = append(duplicates, StreamResult{FileName: h.Filename, Error: "duplicate of " + first})
			continue
		}
		if _, ok := uploads[h.Filename]; ok {
			duplicates = append(duplicates, StreamResult{FileName: h.Filename, Error: "duplicate file name"})
			continue
		}
		byHash[hash] = h.Filename
		uploads[h.Filename] = upload{data: data, mediaType: h.Header.Get("Content-Type")}
		names = append(names, h.Filename)
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID))
	log.Info("stream analysis started", zap.Int("documents", len(names)), zap.Int("duplicates", len(duplicates)))

	loader := func(_ context.Context, name string) (ingestion.Document, error) {
		u := uploads[name]
		return ingestion.FromBytes(name, u.mediaType, u.data)
	}
	results, err := s.analyzer.RunBatch(r.Context(), names, pipeline.BatchOptions{
		Concurrency: s.concurrency,
		Loader:      loader,
		Logger:      log,
		OnProgress: func(event pipeline.ProgressEvent) {
			// Reports go out once, in the results event.
			event.Content = nil
			sse.WriteEvent("step", event) //nolint:errcheck
		},
	})
	if err != nil {
		log.Warn("stream analysis cancelled", zap.Error(err))
		sse.WriteError(err.Error())
		return
	}

	out := make([]StreamResult, 0, len(results)+len(duplicates))
	for _, res := range pipeline.Ranked(results) {
		out = append(out, StreamResult{FileName: res.Path, Report: res.Report})
	}
	for _, res := range results {
		if res.Err != nil {
			out = append(out, StreamResult{FileName: res.Path, Error: res.Err.Error()})
		}
	}
	out = append(out, duplicates...)
	sse.WriteEvent("results", out) //nolint:errcheck
	sse.WriteComplete(runID, "completed")
}

// decodeJSON reads a size-limited JSON body into dst and validates it.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return maxBytesErr
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed '%s' constraint", fe.Tag())}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func uploadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return maxBytesErr
	}
	return &ErrValidation{Field: "file", Message: "invalid multipart upload"}
}
