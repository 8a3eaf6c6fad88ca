package ingestion

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a file yields no text at all.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// UnsupportedFormatError is returned for files that are not text, PDF, DOCX or HTML.
type UnsupportedFormatError struct {
	FileName  string
	MediaType string
}

func (e *UnsupportedFormatError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("unsupported file type %q for %s", e.MediaType, e.FileName)
	}
	return fmt.Sprintf("unsupported file type %q", e.MediaType)
}

// ExtractionError represents a failure to read text out of a document.
type ExtractionError struct {
	FileName string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	name := e.FileName
	if name == "" {
		name = "document"
	}
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", name, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", name, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// FetchError represents a failure to download a remote résumé.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
