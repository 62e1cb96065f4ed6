package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/observability"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _, eng, err := setup()
		if err != nil {
			return err
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(eng.ListTemplates(), eng.Registry().DefaultID())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
