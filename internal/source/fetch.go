package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"golang.org/x/net/html/charset"

	"github.com/bethropolis/tidesel/internal/logger"
)

// DefaultMaxSize is the size above which a download needs confirmation.
const DefaultMaxSize = 512 * 1024

// Fetcher downloads documents over HTTP.
type Fetcher struct {
	Client    *http.Client // nil means http.DefaultClient
	MaxSize   int64        // Zero means DefaultMaxSize
	UserAgent string
}

// Fetch downloads url and decodes it using the response's declared charset,
// falling back to sniffing. Non-HTML and oversized responses are returned
// with warnings rather than rejected.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusProxyAuthRequired {
		return nil, fmt.Errorf("failed to download %s: %s (set proxy credentials in HTTP_PROXY/HTTPS_PROXY)", url, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to download %s: %s", url, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	r, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to detect encoding of %s: %w", url, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}

	doc := &Document{
		Text:   string(data),
		Origin: resp.Request.URL.String(),
		Size:   resp.ContentLength,
	}
	if doc.Size < 0 {
		doc.Size = int64(len(data))
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		doc.MediaType = mediaType
	}

	if !isHTML(doc.MediaType) {
		shown := doc.MediaType
		if shown == "" {
			shown = "unknown"
		}
		doc.warnings = append(doc.warnings, Warning{
			Kind:    NonHTML,
			Message: fmt.Sprintf("The downloaded resource is “%s” rather than HTML, which could produce undesired results.", shown),
		})
	}
	if doc.Size > f.maxSize() {
		doc.warnings = append(doc.warnings, Warning{
			Kind:    TooLarge,
			Message: fmt.Sprintf("The downloaded resource is rather large (%s bytes).", formatCount(doc.Size)),
		})
	}

	logger.Infof("Fetched %s (%s, %d bytes, %d warnings)", doc.Origin, doc.MediaType, doc.Size, len(doc.warnings))
	return doc, nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) maxSize() int64 {
	if f.MaxSize > 0 {
		return f.MaxSize
	}
	return DefaultMaxSize
}

func isHTML(mediaType string) bool {
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
