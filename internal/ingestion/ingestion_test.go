package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_KeepsInlineSpacing(t *testing.T) {
	result := CleanText("Skills  |  Projects   \n\tPython")

	assert.Equal(t, "Skills  |  Projects\n\tPython", result)
}

func TestCleanText_InvisibleCharacters(t *testing.T) {
	result := CleanText("\ufeffJohn\u00a0Smith\u200b")

	assert.Equal(t, "John Smith", result)
}

func TestCleanText_EmptyAndWhitespace(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		declared string
		data     []byte
		want     string
	}{
		{name: "pdf extension", fileName: "cv.PDF", want: MediaTypePDF},
		{name: "docx extension", fileName: "cv.docx", want: MediaTypeDOCX},
		{name: "html extension", fileName: "cv.htm", want: MediaTypeHTML},
		{name: "declared", declared: "text/html; charset=utf-8", want: MediaTypeHTML},
		{name: "sniffed pdf", data: []byte("%PDF-1.4\n"), want: MediaTypePDF},
		{name: "sniffed text", data: []byte("John Smith"), want: MediaTypeText},
		{name: "sniffed zip", data: []byte("PK\x03\x04"), want: MediaTypeDOCX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMediaType(tt.fileName, tt.declared, tt.data))
		})
	}
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("a/b/resume.pdf"))
	assert.True(t, SupportedExtension("resume.TXT"))
	assert.False(t, SupportedExtension("resume.png"))
}

func TestFromBytes_Text(t *testing.T) {
	doc, err := FromBytes("resume.txt", "", []byte("John Smith\r\njohn@mail.com\n"))
	require.NoError(t, err)

	assert.Equal(t, "John Smith\njohn@mail.com", doc.Text)
	assert.Equal(t, "resume.txt", doc.Source.FileName)
	assert.Equal(t, MediaTypeText, doc.Source.MediaType)
	assert.Len(t, doc.Source.ContentHash, 64)
}

func TestFromBytes_Empty(t *testing.T) {
	_, err := FromBytes("resume.txt", "", nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = FromBytes("resume.txt", "", []byte("   \n"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestFromBytes_Unsupported(t *testing.T) {
	_, err := FromBytes("photo.png", "", []byte("\x89PNG\r\n\x1a\n0000"))

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "image/png", unsupported.MediaType)
}

func TestFromBytes_BadPDF(t *testing.T) {
	_, err := FromBytes("resume.pdf", "", []byte("not a pdf"))

	var extraction *ExtractionError
	require.True(t, errors.As(err, &extraction))
	assert.Equal(t, "resume.pdf", extraction.FileName)
}

func TestFromBytes_HTML(t *testing.T) {
	page := `<html><head><style>p{}</style><script>var x=1;</script></head><body>
<h1>John Smith</h1>
<p>Email: <a href="mailto:john@mail.com">john@mail.com</a></p>
<p><a href="https://github.com/johnsmith">GitHub</a></p>
<ul><li>Python</li><li>SQL</li></ul>
</body></html>`

	doc, err := FromBytes("resume.html", "", []byte(page))
	require.NoError(t, err)

	assert.Contains(t, doc.Text, "John Smith\n")
	assert.Contains(t, doc.Text, "• Python")
	assert.NotContains(t, doc.Text, "var x")
	assert.Equal(t, []string{"https://github.com/johnsmith"}, doc.Links)
}

func TestFromBytes_DOCX(t *testing.T) {
	data := buildDOCX(t,
		`<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Skills: Go &amp; SQL</w:t></w:r></w:p></w:body></w:document>`,
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`+
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://linkedin.com/in/janedoe" TargetMode="External"/>`+
			`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`+
			`</Relationships>`)

	doc, err := FromBytes("resume.docx", "", data)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nSkills: Go & SQL", doc.Text)
	assert.Equal(t, []string{"https://linkedin.com/in/janedoe"}, doc.Links)
	assert.Equal(t, MediaTypeDOCX, doc.Source.MediaType)
}

func TestFromText_DedupesLinks(t *testing.T) {
	doc := FromText("Jane", "https://a.dev", "ftp://b", "https://a.dev", " https://c.dev ")

	assert.Equal(t, []string{"https://a.dev", "https://c.dev"}, doc.Links)
	assert.Equal(t, MediaTypeText, doc.Source.MediaType)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe"), 0o644))

	doc, err := FromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Text)

	_, err = FromFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<body><p>Jane Doe</p><a href="/projects">Projects</a></body>`))
	}))
	defer srv.Close()

	doc, err := FromURL(context.Background(), srv.URL+"/cv", nil)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "Jane Doe")
	assert.Equal(t, []string{srv.URL + "/projects"}, doc.Links)
	assert.Equal(t, srv.URL+"/cv", doc.Source.FileName)

	_, err = FromURL(context.Background(), srv.URL+"/missing", nil)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")

	_, err = FromURL(context.Background(), "ftp://example.com/cv", nil)
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func buildDOCX(t *testing.T, document, rels string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": rels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
