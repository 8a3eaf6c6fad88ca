package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Tharuni-2310/ProFile-Analyser/internal/types"
)

// Media types accepted for analysis.
const (
	MediaTypeText = "text/plain"
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeHTML = "text/html"
)

var extensionMediaTypes = map[string]string{
	".txt":  MediaTypeText,
	".text": MediaTypeText,
	".md":   MediaTypeText,
	".pdf":  MediaTypePDF,
	".docx": MediaTypeDOCX,
	".html": MediaTypeHTML,
	".htm":  MediaTypeHTML,
}

// SupportedExtension reports whether a file name has an extension the analyzer accepts.
func SupportedExtension(fileName string) bool {
	_, ok := extensionMediaTypes[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

// DetectMediaType chooses a media type from the file extension, then from
// the declared content type, then by sniffing the first bytes of data.
func DetectMediaType(fileName, declared string, data []byte) string {
	if mt, ok := extensionMediaTypes[strings.ToLower(filepath.Ext(fileName))]; ok {
		return mt
	}
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	if mt == "application/zip" {
		// DOCX files are zip archives and sniff as such.
		return MediaTypeDOCX
	}
	return mt
}

// ContentHash returns the hex SHA-256 digest of data.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// NewSource describes a document read from fileName.
func NewSource(fileName, mediaType string, data []byte) types.Source {
	src := types.Source{ContentHash: ContentHash(data), MediaType: mediaType}
	if fileName != "" {
		src.FileName = filepath.Base(fileName)
	}
	return src
}
