package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/templates"
)

// Render modes
const (
	modeLive   = "live"
	modeStatic = "static"
)

var (
	renderState    string
	renderTemplate string
	renderMode     string
	renderOut      string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a portfolio to HTML",
	Long: `Render a portfolio with one template. "live" produces the preview markup the
editor shows; "static" produces the standalone document shipped in exports.
An unknown template falls back to the default with a warning.`,
	Example: `  portfolio_builder render --state portfolio.json --template frontend --out index.html
  portfolio_builder render --mode live`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderState, "state", "s", "", "Path to a portfolio JSON file (default: seed portfolio)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template ID (default: the portfolio's selected template)")
	renderCmd.Flags().StringVar(&renderMode, "mode", modeStatic, "Rendering path: live or static")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	_, _, eng, err := setup()
	if err != nil {
		return err
	}
	st, err := loadState(renderState)
	if err != nil {
		return err
	}
	if renderTemplate != "" {
		st.SelectedTemplate = renderTemplate
	}

	var (
		html string
		res  templates.Resolution
	)
	switch renderMode {
	case modeLive:
		html, res, err = eng.Preview(&st)
	case modeStatic:
		var doc export.Document
		doc, res, err = eng.GenerateDocument(&st)
		html = doc.HTML
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", renderMode, modeLive, modeStatic)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	warnFallback(cmd, res)

	return writeOutput(cmd.OutOrStdout(), renderOut, []byte(html))
}

func warnFallback(cmd *cobra.Command, res templates.Resolution) {
	if res.FellBack {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: template %q not found, using %q\n", res.Requested, res.Used)
	}
}
