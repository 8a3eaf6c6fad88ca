package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the plain text of every page and the URI targets of
// its link annotations.
func extractPDF(data []byte) (text string, links []string, err error) {
	defer func() {
		// The PDF reader panics on some malformed cross-reference tables.
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		if !strings.HasSuffix(pageText, "\n") {
			sb.WriteString("\n")
		}
		links = append(links, pageLinks(page)...)
	}
	return sb.String(), links, nil
}

func pageLinks(page pdf.Page) []string {
	annots := page.V.Key("Annots")
	var links []string
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Key("Subtype").Name() != "Link" {
			continue
		}
		if uri := annot.Key("A").Key("URI").RawString(); uri != "" {
			links = append(links, uri)
		}
	}
	return links
}
