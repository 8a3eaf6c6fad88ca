package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no stored report matches a lookup.
var ErrNotFound = errors.New("report not found")

// List limits for ListReports.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ReportSummary is one row of a report listing.
type ReportSummary struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentHash string    `json:"content_hash"`
	Field       string    `json:"field"`
	Score       int       `json:"score"`
	Rating      string    `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// clampLimit maps non-positive limits to the default and caps large ones.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
