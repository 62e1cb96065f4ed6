// Package snapshot captures rendered portfolio documents with headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/logging"
)

// Format is the capture output format
type Format string

// Capture formats
const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Ext returns the file extension for the format
func (f Format) Ext() string {
	return "." + string(f)
}

// Options configure a Capturer
type Options struct {
	Width   int64
	Height  int64
	Timeout time.Duration
	// ExecPath overrides the Chrome binary; CHROME_PATH is used when empty.
	ExecPath string
}

// DefaultOptions is a desktop viewport with a 30s timeout per capture
var DefaultOptions = Options{Width: 1280, Height: 800, Timeout: 30 * time.Second}

// Capturer owns one headless browser and opens a tab per capture. It is safe
// for concurrent use.
type Capturer struct {
	opts    Options
	logger  *zap.Logger
	browser context.Context
	cancel  func()
}

// New starts a headless browser
func New(ctx context.Context, opts Options, logger *zap.Logger) (*Capturer, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions.Height
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions.Timeout
	}
	if opts.ExecPath == "" {
		opts.ExecPath = os.Getenv("CHROME_PATH")
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(int(opts.Width), int(opts.Height)),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browser, browserCancel := chromedp.NewContext(allocCtx)

	// An empty run launches the browser.
	if err := chromedp.Run(browser); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &Capturer{
		opts:    opts,
		logger:  logging.OrNop(logger),
		browser: browser,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
	}, nil
}

// Close shuts the browser down
func (c *Capturer) Close() {
	c.cancel()
}

// Capture loads html into a fresh tab and returns a full-page PNG or a PDF
func (c *Capturer) Capture(ctx context.Context, html string, format Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("capture cancelled: %w", err)
	}
	tab, cancelTab := chromedp.NewContext(c.browser)
	defer cancelTab()
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	tab, cancel := context.WithTimeout(tab, c.opts.Timeout)
	defer cancel()

	start := time.Now()
	var out []byte
	actions := []chromedp.Action{
		chromedp.EmulateViewport(c.opts.Width, c.opts.Height),
		chromedp.Navigate("about:blank"),
		loadDocument(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}

	switch format {
	case FormatPNG:
		actions = append(actions, chromedp.FullScreenshot(&out, 100))
	case FormatPDF:
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			out, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}))
	default:
		return nil, fmt.Errorf("unsupported capture format %q", format)
	}

	if err := chromedp.Run(tab, actions...); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("capture cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("capture failed: %w", err)
	}

	c.logger.Debug("captured document",
		zap.String("format", string(format)),
		zap.Int("bytes", len(out)),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// loadDocument replaces the current frame's document with html
func loadDocument(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return fmt.Errorf("get frame tree: %w", err)
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}
