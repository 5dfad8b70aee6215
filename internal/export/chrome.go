package export

import (
	"context"
	"fmt"
	"log"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const mmPerInch = 25.4

// ChromeRasterizer renders HTML in headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRasterizer struct {
	// ExecPath overrides the Chrome binary lookup when non-empty.
	ExecPath string
	Verbose  bool
}

// NewChromeRasterizer creates a ChromeRasterizer.
func NewChromeRasterizer(execPath string, verbose bool) *ChromeRasterizer {
	return &ChromeRasterizer{ExecPath: execPath, Verbose: verbose}
}

// Screenshot loads html into a blank tab and captures the element matching selector.
func (c *ChromeRasterizer) Screenshot(ctx context.Context, html, selector string) ([]byte, error) {
	browserCtx, cancel := c.browser(ctx)
	defer cancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Screenshot(selector, &buf, chromedp.NodeVisible, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	if c.Verbose {
		log.Printf("[BROWSER] Captured %s: %d bytes", selector, len(buf))
	}
	return buf, nil
}

// PrintPDF loads html into a blank tab and prints the first page with no margins.
func (c *ChromeRasterizer) PrintPDF(ctx context.Context, html string, size PageSize) ([]byte, error) {
	browserCtx, cancel := c.browser(ctx)
	defer cancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPaperWidth(size.WidthMM / mmPerInch).
				WithPaperHeight(size.HeightMM / mmPerInch).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPageRanges("1").
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf failed: %w", err)
	}

	if c.Verbose {
		log.Printf("[BROWSER] Printed PDF: %d bytes", len(buf))
	}
	return buf, nil
}

func (c *ChromeRasterizer) browser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	return browserCtx, func() {
		cancelBrowser()
		cancelAlloc()
	}
}

func setContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
}
