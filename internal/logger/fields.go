package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldFile is the structured log key for a document's file name.
	FieldFile = "file"
	// FieldHash is the structured log key for a document's content hash.
	FieldHash = "content_hash"
	// FieldReportID is the structured log key for a stored report.
	FieldReportID = "report_id"

	hashPrefixLen = 12
)

// StringField is a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, trimming whitespace
// and omitting entries with an empty key or value.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to logger, falling back to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// DocumentFields describes a document by file name and a short hash prefix.
func DocumentFields(fileName, contentHash string) []zap.Field {
	if len(contentHash) > hashPrefixLen {
		contentHash = contentHash[:hashPrefixLen]
	}
	return StringFields(
		StringField{Key: FieldFile, Value: fileName},
		StringField{Key: FieldHash, Value: contentHash},
	)
}
