package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

const (
	// DefaultTimeout bounds a remote résumé download.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the analyzer to remote hosts.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ProFileAnalyser/1.0)"
	// DefaultMaxBytes caps the size of a downloaded résumé.
	DefaultMaxBytes = 10 << 20
)

// FetchOptions configures FromURL.
type FetchOptions struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
	Client    *http.Client
}

// DefaultFetchOptions returns the defaults used when FromURL gets nil options.
func DefaultFetchOptions() *FetchOptions {
	return &FetchOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
	}
}

// FromURL downloads a résumé (HTML page, PDF, DOCX or text) and extracts it.
func FromURL(ctx context.Context, rawURL string, opts *FetchOptions) (Document, error) {
	if opts == nil {
		opts = DefaultFetchOptions()
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return Document{}, &FetchError{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Document{}, &FetchError{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return Document{}, &FetchError{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Document{}, &FetchError{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return Document{}, &FetchError{URL: rawURL, Message: "failed to read response body", Cause: err}
	}
	if int64(len(body)) > limit {
		return Document{}, &FetchError{URL: rawURL, Message: fmt.Sprintf("response exceeds %d bytes", limit)}
	}

	name := path.Base(parsed.Path)
	if name == "/" || name == "." {
		name = ""
	}
	doc, err := fromBytes(name, resp.Header.Get("Content-Type"), body, parsed)
	doc.Source.FileName = rawURL
	return doc, err
}

func resolveLinks(base *url.URL, links []string) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		u, err := url.Parse(l)
		if err != nil {
			continue
		}
		out = append(out, base.ResolveReference(u).String())
	}
	return out
}
