package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-builder/internal/snapshot"
)

var (
	snapshotState     string
	snapshotOut       string
	snapshotPDF       bool
	snapshotTemplates []string
	snapshotWidth     int64
	snapshotHeight    int64
	snapshotParallel  int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the static document of each template with headless Chrome",
	Long: `Render the portfolio's static document with each template and capture it as a
full-page PNG (or a PDF with --pdf). Requires Chrome or Chromium; set
CHROME_PATH to point at a non-default binary.`,
	Example: `  portfolio_builder snapshot --state portfolio.json --out shots
  portfolio_builder snapshot --templates frontend,mobile --pdf`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotState, "state", "s", "", "Path to a portfolio JSON file (default: seed portfolio)")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshots", "Directory to write captures into")
	snapshotCmd.Flags().BoolVar(&snapshotPDF, "pdf", false, "Capture PDFs instead of PNGs")
	snapshotCmd.Flags().StringSliceVar(&snapshotTemplates, "templates", nil, "Template IDs to capture (default: all)")
	snapshotCmd.Flags().Int64Var(&snapshotWidth, "width", snapshot.DefaultOptions.Width, "Viewport width")
	snapshotCmd.Flags().Int64Var(&snapshotHeight, "height", snapshot.DefaultOptions.Height, "Viewport height")
	snapshotCmd.Flags().IntVar(&snapshotParallel, "parallel", 4, "Maximum concurrent captures")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	_, logger, eng, err := setup()
	if err != nil {
		return err
	}
	st, err := loadState(snapshotState)
	if err != nil {
		return err
	}

	ids := snapshotTemplates
	if len(ids) == 0 {
		for _, t := range eng.ListTemplates() {
			ids = append(ids, t.ID)
		}
	}
	for _, id := range ids {
		if !eng.Registry().Exists(id) {
			return fmt.Errorf("unknown template %q", id)
		}
	}

	format := snapshot.FormatPNG
	if snapshotPDF {
		format = snapshot.FormatPDF
	}
	if err := os.MkdirAll(snapshotOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := contextOrBackground(cmd)
	capturer, err := snapshot.New(ctx, snapshot.Options{Width: snapshotWidth, Height: snapshotHeight}, logger)
	if err != nil {
		return err
	}
	defer capturer.Close()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(snapshotParallel, 1))
	for _, id := range ids {
		g.Go(func() error {
			templated := st.Clone()
			templated.SelectedTemplate = id
			doc, _, err := eng.GenerateDocument(&templated)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			data, err := capturer.Capture(gctx, doc.HTML, format)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			path := filepath.Join(snapshotOut, id+format.Ext())
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("captured template", zap.String("template", id), zap.String("path", path))
			mu.Lock()
			fmt.Fprintln(cmd.OutOrStdout(), path)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
