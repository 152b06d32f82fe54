package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// ErrPDFToolNotFound signals that the fallback extractor's pdftotext
// binary (poppler-utils) is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH - install poppler-utils")

// Extractor produces per-page text from a source document. Page order
// follows the document; blank pages stay in place so page numbers keep
// their meaning for range-based ingestion.
type Extractor interface {
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// CommandRunner abstracts subprocess execution so the fallback path can
// be tested without poppler installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PDFExtractor extracts per-page plain text from PDF files.
//
// The in-process reader is tried first; when it fails or yields no
// text, extraction falls back to the pdftotext binary.
type PDFExtractor struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
	log      zerolog.Logger
}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor(logger *zerolog.Logger) *PDFExtractor {
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &PDFExtractor{runner: execRunner{}, lookPath: exec.LookPath, log: log}
}

// ExtractPages implements Extractor for PDF files.
func (e *PDFExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source file not readable: %w", err)
	}

	pages, err := e.readPages(path)
	if err == nil && hasText(pages) {
		return pages, nil
	}
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("primary PDF extraction failed, trying pdftotext")
	}

	fallback, fallbackErr := e.pdftotextPages(ctx, path)
	if fallbackErr != nil {
		if err != nil {
			return nil, fmt.Errorf("pdf extraction failed: %w (fallback: %v)", err, fallbackErr)
		}
		return nil, fmt.Errorf("pdf extraction produced no text: %w", fallbackErr)
	}
	return fallback, nil
}

// readPages extracts text with the in-process PDF reader.
func (e *PDFExtractor) readPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.log.Warn().Err(err).Int("page", i).Str("path", path).Msg("page extraction failed")
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}
	return pages, nil
}

// pdftotextPages extracts text through poppler's pdftotext, splitting
// pages on the form feed it emits between them.
func (e *PDFExtractor) pdftotextPages(ctx context.Context, path string) ([]string, error) {
	if _, err := e.lookPath("pdftotext"); err != nil {
		return nil, ErrPDFToolNotFound
	}

	out, err := e.runner.Run(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	raw := strings.Split(string(out), "\f")
	// pdftotext terminates the last page with a form feed too
	if len(raw) > 0 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		raw = raw[:len(raw)-1]
	}

	pages := make([]string, len(raw))
	for i, page := range raw {
		pages[i] = strings.TrimSpace(page)
	}
	if !hasText(pages) {
		return nil, errors.New("pdftotext produced no text")
	}
	return pages, nil
}

func hasText(pages []string) bool {
	for _, page := range pages {
		if page != "" {
			return true
		}
	}
	return false
}
