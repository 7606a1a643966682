// Package source loads markup text from files and URLs.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bethropolis/tidesel/internal/logger"
)

// WarningKind classifies a loaded document that may need confirmation.
type WarningKind int

const (
	NonHTML  WarningKind = iota // Media type is not HTML
	TooLarge                    // Larger than the import limit
)

func (k WarningKind) String() string {
	switch k {
	case NonHTML:
		return "non-HTML content"
	case TooLarge:
		return "large content"
	}
	return "warning"
}

// Warning is a reason to ask before loading a document.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return w.Message }

// Document is decoded markup text and what is known about where it came from.
type Document struct {
	Text      string
	Origin    string // Path or URL
	MediaType string // From Content-Type; "" for files
	Size      int64  // Content-Length, or the decoded size when unknown

	warnings []Warning
}

// Warnings lists reasons the caller should confirm before using the document.
func (d *Document) Warnings() []Warning {
	return d.warnings
}

// ErrNeedsConfirmation is returned by Confirm when a document carries
// warnings and the caller did not force loading.
var ErrNeedsConfirmation = errors.New("document needs confirmation")

// Confirm returns nil when the document has no warnings or force is set.
// Otherwise the error wraps ErrNeedsConfirmation and lists the warnings.
func (d *Document) Confirm(force bool) error {
	if len(d.warnings) == 0 {
		return nil
	}
	msgs := make([]string, len(d.warnings))
	for i, w := range d.warnings {
		msgs[i] = w.Message
	}
	if force {
		logger.Warnf("source: loading '%s' despite: %s", d.Origin, strings.Join(msgs, " "))
		return nil
	}
	return fmt.Errorf("%w: %s (use --force to load anyway)", ErrNeedsConfirmation, strings.Join(msgs, " "))
}

// ReadFile reads the file at path, decoding it to UTF-8 using its byte
// order mark or <meta charset>, defaulting to windows-1252 per HTML5.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return nil, fmt.Errorf("failed to detect encoding of '%s': %w", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	logger.DebugTagf("source", "ReadFile: %s (%d bytes)", path, len(data))
	return &Document{Text: string(data), Origin: path, Size: int64(len(data))}, nil
}

// Open loads target as a URL when it has an http(s) scheme or looks like a
// bare domain name and no such file exists; otherwise as a file.
func (f *Fetcher) Open(ctx context.Context, target string) (*Document, error) {
	if hasHTTPScheme(target) {
		return f.Fetch(ctx, target)
	}
	if _, err := os.Stat(target); err != nil && looksLikeDomain(target) {
		u, nerr := NormalizeURL(target)
		if nerr == nil {
			return f.Fetch(ctx, u)
		}
	}
	return ReadFile(target)
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// formatCount formats n with thousands separators.
func formatCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
