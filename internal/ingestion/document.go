// Package ingestion turns résumé files into plain text plus the hyperlinks
// embedded in them.
package ingestion

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// Document is extracted résumé text with its link targets and provenance.
type Document struct {
	Text   string
	Links  []string
	Source types.Source
}

// FromText wraps text that was already extracted elsewhere.
func FromText(text string, links ...string) Document {
	cleaned := CleanText(text)
	return Document{
		Text:   cleaned,
		Links:  dedupeLinks(links),
		Source: NewSource("", MediaTypeText, []byte(text)),
	}
}

// FromFile reads and extracts a document from disk.
func FromFile(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, fmt.Errorf("file not found: %w", err)
		}
		return Document{}, fmt.Errorf("failed to read file: %w", err)
	}
	return FromBytes(path, "", data)
}

// FromBytes extracts a document from raw file content. declaredType may be
// empty; the file extension takes precedence over it.
func FromBytes(fileName, declaredType string, data []byte) (Document, error) {
	return fromBytes(fileName, declaredType, data, nil)
}

// fromBytes resolves relative link targets against base when it is set.
func fromBytes(fileName, declaredType string, data []byte, base *url.URL) (Document, error) {
	if len(data) == 0 {
		return Document{}, ErrEmptyDocument
	}

	mediaType := DetectMediaType(fileName, declaredType, data)
	var (
		text  string
		links []string
		err   error
	)
	switch mediaType {
	case MediaTypeText:
		if !utf8.Valid(data) {
			return Document{}, &ExtractionError{FileName: fileName, Message: "text is not valid UTF-8"}
		}
		text = string(data)
	case MediaTypePDF:
		text, links, err = extractPDF(data)
	case MediaTypeDOCX:
		text, links, err = extractDOCX(data)
	case MediaTypeHTML:
		text, links, err = extractHTML(data)
	default:
		return Document{}, &UnsupportedFormatError{FileName: fileName, MediaType: mediaType}
	}
	if err != nil {
		return Document{}, &ExtractionError{FileName: fileName, Message: fmt.Sprintf("failed to read %s", mediaType), Cause: err}
	}

	if base != nil {
		links = resolveLinks(base, links)
	}
	doc := Document{
		Text:   CleanText(text),
		Links:  dedupeLinks(links),
		Source: NewSource(fileName, mediaType, data),
	}
	if strings.TrimSpace(doc.Text) == "" && len(doc.Links) == 0 {
		return doc, ErrEmptyDocument
	}
	return doc, nil
}
