package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/observability"
)

var (
	exportState    string
	exportTemplate string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Package a portfolio as a deployable zip",
	Long: `Generate the standalone document for a portfolio and package it with a README,
package.json and deployment guide into a zip archive named after the user.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportState, "state", "s", "", "Path to a portfolio JSON file (default: seed portfolio)")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template ID (default: the portfolio's selected template)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Directory to write the archive into")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	_, _, eng, err := setup()
	if err != nil {
		return err
	}
	st, err := loadState(exportState)
	if err != nil {
		return err
	}
	if exportTemplate != "" {
		st.SelectedTemplate = exportTemplate
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	archive, res, err := eng.Export(contextOrBackground(cmd), &st, func(p export.Progress) {
		printer.PrintProgress(p)
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	warnFallback(cmd, res)

	path := filepath.Join(exportOut, archive.Name)
	if err := writeOutput(cmd.OutOrStdout(), path, archive.Data); err != nil {
		return err
	}
	printer.PrintArchive(archive, path)
	return nil
}
