package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/observability"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var validateState string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a portfolio file",
	Long: `Check a portfolio file against the portfolio JSON schema and the state
invariants (item ids, skill levels, design options), then print a summary.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateState, "state", "s", "", "Path to a portfolio JSON file (default: seed portfolio)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())

	var st types.PortfolioState
	if validateState == "" {
		st = types.SeedState()
	} else {
		data, err := os.ReadFile(validateState)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", validateState, err)
		}
		st, err = schemas.DecodePortfolio(data)
		if err != nil {
			var ve *schemas.ValidationError
			if errors.As(err, &ve) {
				printer.PrintValidationErrors(ve.Errors)
			}
			return err
		}
		st = state.WithIDs(st)
	}

	if err := st.Validate(); err != nil {
		return fmt.Errorf("invalid portfolio: %w", err)
	}
	printer.PrintPortfolio(st)
	return nil
}
