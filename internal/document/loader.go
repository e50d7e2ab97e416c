package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katakuxiko/resumeqa/internal/store"
)

var ErrEmptyDocument = errors.New("document has no text")

// Load resolves source into the document text the service answers from.
//
// An empty source yields DefaultResume. A postgres:// or postgresql:// URL
// reads the row called name from the documents table. Anything else is a
// file path dispatched on its extension (.txt, .md, .pdf, .docx).
func Load(ctx context.Context, source, name string) (string, error) {
	if source == "" {
		return DefaultResume, nil
	}

	var (
		txt string
		err error
	)
	if isPostgres(source) {
		txt, err = loadPostgres(ctx, source, name)
	} else {
		txt, err = LoadFile(source)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(txt) == "" {
		return "", fmt.Errorf("%s: %w", describe(source), ErrEmptyDocument)
	}
	return txt, nil
}

// LoadFile extracts text from a local file.
func LoadFile(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", "":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		return string(b), nil
	case ".md", ".markdown":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		return MarkdownText(b), nil
	case ".pdf":
		txt, err := ExtractPDF(path)
		if err != nil {
			return "", fmt.Errorf("extract pdf: %w", err)
		}
		return Sanitize(txt), nil
	case ".docx":
		txt, err := ExtractDOCX(path)
		if err != nil {
			return "", fmt.Errorf("extract docx: %w", err)
		}
		return txt, nil
	default:
		return "", fmt.Errorf("unsupported document type %q", ext)
	}
}

func loadPostgres(ctx context.Context, dsn, name string) (string, error) {
	s, err := store.NewPgStore(dsn)
	if err != nil {
		return "", fmt.Errorf("open document store: %w", err)
	}
	defer s.Close()

	txt, err := s.Document(ctx, name)
	if err != nil {
		return "", fmt.Errorf("load document %q: %w", name, err)
	}
	return txt, nil
}

func isPostgres(source string) bool {
	return strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://")
}

// describe keeps credentials embedded in a DSN out of error messages.
func describe(source string) string {
	if isPostgres(source) {
		return "postgres document"
	}
	return source
}
