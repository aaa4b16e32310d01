// Package viewer renders attachment previews. Dispatch picks a mode from the
// original filename's extension first; the stored MIME type is only a
// fallback for recognising PDFs with mangled names.
package viewer

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"apptrack/internal/models"

	"github.com/gomarkdown/markdown"
)

type Mode string

const (
	ModePDF         Mode = "pdf"
	ModeMarkdown    Mode = "markdown"
	ModeText        Mode = "text"
	ModeUnsupported Mode = "unsupported"
)

// Detect resolves the preview mode for a file. Extension wins; the MIME type
// only rescues PDFs whose filename lost its extension.
func Detect(filename string, mimeType *string) Mode {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ModePDF
	case ".md":
		return ModeMarkdown
	case ".txt":
		return ModeText
	}
	if mimeType != nil && *mimeType == "application/pdf" {
		return ModePDF
	}
	return ModeUnsupported
}

// Content is one rendered preview.
type Content struct {
	Mode    Mode   `json:"mode"`
	FileURL string `json:"file_url"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// FetchFunc loads the raw bytes behind an attachment.
type FetchFunc func(ctx context.Context, attachment *models.Attachment) ([]byte, error)

// Session is one open viewer. Text content is fetched at most once per file
// for the session's lifetime; closing the session drops everything.
type Session struct {
	fetch FetchFunc

	mu      sync.Mutex
	content map[string]string
}

func NewSession(fetch FetchFunc) *Session {
	return &Session{
		fetch:   fetch,
		content: make(map[string]string),
	}
}

// View renders one attachment. PDFs embed by URL and are never fetched here;
// text and markdown are fetched through the session cache.
func (s *Session) View(ctx context.Context, attachment *models.Attachment) (*Content, error) {
	mode := Detect(attachment.Filename, attachment.MimeType)

	switch mode {
	case ModePDF:
		return &Content{Mode: ModePDF, FileURL: attachment.URL}, nil

	case ModeMarkdown:
		text, err := s.load(ctx, attachment)
		if err != nil {
			return nil, err
		}
		html := string(markdown.ToHTML([]byte(text), nil, nil))
		return &Content{Mode: ModeMarkdown, FileURL: attachment.URL, Text: text, HTML: html}, nil

	case ModeText:
		text, err := s.load(ctx, attachment)
		if err != nil {
			return nil, err
		}
		return &Content{Mode: ModeText, FileURL: attachment.URL, Text: text}, nil

	default:
		return &Content{Mode: ModeUnsupported, FileURL: attachment.URL}, nil
	}
}

func (s *Session) load(ctx context.Context, attachment *models.Attachment) (string, error) {
	key := attachment.URL
	if key == "" {
		key = attachment.Path
	}

	s.mu.Lock()
	cached, ok := s.content[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	raw, err := s.fetch(ctx, attachment)
	if err != nil {
		return "", err
	}
	text := string(raw)

	s.mu.Lock()
	s.content[key] = text
	s.mu.Unlock()
	return text, nil
}

// Close drops the session's cached content.
func (s *Session) Close() {
	s.mu.Lock()
	s.content = make(map[string]string)
	s.mu.Unlock()
}
