// Package export rasterizes the rendered resume preview into a downloadable
// PNG image or a single-page PDF document.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/semaphore"
)

// Mode selects the artifact type.
type Mode string

const (
	// ModeImage encodes the captured preview as a PNG.
	ModeImage Mode = "png"
	// ModeDocument places the captured preview on a single PDF page.
	ModeDocument Mode = "pdf"
)

// Artifact file names.
const (
	ImageFilename    = "resume.png"
	DocumentFilename = "resume.pdf"
)

var (
	// ErrNoPreviewSurface means the preview element could not be located in the rendered page.
	ErrNoPreviewSurface = errors.New("preview surface not found")
	// ErrUnknownMode is returned for modes other than ModeImage and ModeDocument.
	ErrUnknownMode = errors.New("unknown export mode")
)

// ParseMode maps "png" and "pdf" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeImage:
		return ModeImage, nil
	case ModeDocument:
		return ModeDocument, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Artifact is a finished export ready to be offered for download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Rasterizer turns HTML into pixels.
type Rasterizer interface {
	// Screenshot renders html and captures the element matching selector as a PNG.
	Screenshot(ctx context.Context, html, selector string) ([]byte, error)
	// PrintPDF renders html onto a single page of the given size.
	PrintPDF(ctx context.Context, html string, size PageSize) ([]byte, error)
}

// RasterizeError wraps a failure of the underlying Rasterizer.
type RasterizeError struct {
	Mode  Mode
	Cause error
}

func (e *RasterizeError) Error() string {
	return fmt.Sprintf("rasterize %s: %v", e.Mode, e.Cause)
}

func (e *RasterizeError) Unwrap() error {
	return e.Cause
}

// Options configures a Pipeline.
type Options struct {
	// MaxConcurrent bounds simultaneous rasterizations. Defaults to 2.
	MaxConcurrent int64
	// Timeout bounds a single export. Defaults to 30s.
	Timeout time.Duration
	// PageSize of document exports. Defaults to A4.
	PageSize PageSize
	Verbose  bool
}

// Pipeline exports form state snapshots.
type Pipeline struct {
	raster  Rasterizer
	sem     *semaphore.Weighted
	timeout time.Duration
	page    PageSize
	verbose bool
}

// NewPipeline creates a Pipeline that rasterizes with r.
func NewPipeline(r Rasterizer, opts Options) *Pipeline {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.PageSize == (PageSize{}) {
		opts.PageSize = A4
	}
	return &Pipeline{
		raster:  r,
		sem:     semaphore.NewWeighted(opts.MaxConcurrent),
		timeout: opts.Timeout,
		page:    opts.PageSize,
		verbose: opts.Verbose,
	}
}

// Export renders s, rasterizes its preview and returns the artifact for mode.
// s is a snapshot: later edits do not affect an export in flight. On any
// failure no artifact is returned.
func (p *Pipeline) Export(ctx context.Context, s types.FormState, mode Mode) (*Artifact, error) {
	if mode != ModeImage && mode != ModeDocument {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	html, err := rendering.RenderHTML(s)
	if err != nil {
		return nil, fmt.Errorf("failed to render preview: %w", err)
	}
	return p.exportHTML(ctx, html, mode)
}

func (p *Pipeline) exportHTML(ctx context.Context, html string, mode Mode) (artifact *Artifact, err error) {
	start := time.Now()
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
			log.Printf("[EXPORT] %s export failed after %v: %v", mode, time.Since(start), err)
		} else if p.verbose {
			log.Printf("[EXPORT] %s export produced %d bytes in %v", mode, len(artifact.Data), time.Since(start))
		}
		observability.RecordExport(string(mode), result, time.Since(start).Seconds())
	}()

	selector, err := locateSurface(html)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for a rasterizer slot: %w", err)
	}
	defer p.sem.Release(1)

	img, err := p.raster.Screenshot(ctx, html, selector)
	if err != nil {
		return nil, &RasterizeError{Mode: mode, Cause: err}
	}

	if mode == ModeImage {
		return &Artifact{Filename: ImageFilename, ContentType: "image/png", Data: img}, nil
	}

	page, err := documentPage(img, p.page)
	if err != nil {
		return nil, err
	}
	pdf, err := p.raster.PrintPDF(ctx, page, p.page)
	if err != nil {
		return nil, &RasterizeError{Mode: mode, Cause: err}
	}
	return &Artifact{Filename: DocumentFilename, ContentType: "application/pdf", Data: pdf}, nil
}

// locateSurface checks that html contains exactly the preview element and
// returns its selector.
func locateSurface(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoPreviewSurface, err)
	}
	selector := "#" + rendering.PreviewElementID
	if doc.Find(selector).Length() != 1 {
		return "", ErrNoPreviewSurface
	}
	return selector, nil
}

// imageSize returns the pixel dimensions of a PNG.
func imageSize(img []byte) (width, height int, err error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return 0, 0, fmt.Errorf("captured preview is not a PNG: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, fmt.Errorf("captured preview is empty (%dx%d)", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}
