package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

const (
	docxRelsPath     = "word/_rels/document.xml.rels"
	hyperlinkRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:cr[^>]*/>`)
	docxTab          = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX returns the paragraph text of the document body and its
// external hyperlink targets.
func extractDOCX(data []byte) (string, []string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	text := docxBodyText(doc.Editable().GetContent())

	links, err := docxHyperlinks(data)
	if err != nil {
		return "", nil, err
	}
	return text, links, nil
}

func docxBodyText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

type docxRelationships struct {
	Relationships []struct {
		Type       string `xml:"Type,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

// docxHyperlinks reads the hyperlink relationships of the main document part.
func docxHyperlinks(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != docxRelsPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open relationships: %w", err)
		}
		raw, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read relationships: %w", err)
		}
		var rels docxRelationships
		if err := xml.Unmarshal(raw, &rels); err != nil {
			return nil, fmt.Errorf("failed to parse relationships: %w", err)
		}
		var links []string
		for _, r := range rels.Relationships {
			if r.Type == hyperlinkRelType && strings.EqualFold(r.TargetMode, "External") {
				links = append(links, r.Target)
			}
		}
		return links, nil
	}
	return nil, nil
}
