package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// SaveReport stores report keyed by its content hash. Re-analyzing the same
// document replaces the stored analysis but keeps the original row ID, which
// is written back to report.ID.
func (db *DB) SaveReport(ctx context.Context, report *types.Report) (uuid.UUID, error) {
	if report == nil {
		return uuid.Nil, fmt.Errorf("report is nil")
	}
	if report.Source.ContentHash == "" {
		return uuid.Nil, fmt.Errorf("report has no content hash")
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	content, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO reports (id, content_hash, file_name, media_type, object_key, field, score, rating, report)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (content_hash) DO UPDATE SET
		     file_name = EXCLUDED.file_name,
		     media_type = EXCLUDED.media_type,
		     object_key = EXCLUDED.object_key,
		     field = EXCLUDED.field,
		     score = EXCLUDED.score,
		     rating = EXCLUDED.rating,
		     report = EXCLUDED.report,
		     updated_at = NOW()
		 RETURNING id`,
		report.ID, report.Source.ContentHash, report.Source.FileName, report.Source.MediaType,
		report.Source.ObjectKey, string(report.Field), report.Score, string(report.Rating), content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}

	report.ID = id
	return id, nil
}

// GetReport retrieves a stored report by ID.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error) {
	return db.scanReport(db.pool.QueryRow(ctx,
		`SELECT id, report FROM reports WHERE id = $1`, id))
}

// GetReportByHash retrieves the stored report for a document content hash.
func (db *DB) GetReportByHash(ctx context.Context, contentHash string) (*types.Report, error) {
	return db.scanReport(db.pool.QueryRow(ctx,
		`SELECT id, report FROM reports WHERE content_hash = $1`, contentHash))
}

func (db *DB) scanReport(row pgx.Row) (*types.Report, error) {
	var (
		id      uuid.UUID
		content []byte
	)
	if err := row.Scan(&id, &content); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.Report
	if err := json.Unmarshal(content, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	report.ID = id
	return &report, nil
}

// ListReports returns the most recent reports, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, content_hash, field, score, rating, created_at, updated_at
		 FROM reports ORDER BY created_at DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := []ReportSummary{}
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.FileName, &s.ContentHash, &s.Field, &s.Score, &s.Rating, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	return summaries, nil
}

// DeleteReport removes a stored report.
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
