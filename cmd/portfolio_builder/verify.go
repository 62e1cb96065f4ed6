package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/observability"
)

var verifyState string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that live and static rendering agree for every template",
	Long: `Render the portfolio through both the live preview path and the static export
path for every template and compare the visible text. Exits non-zero when any
template differs.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyState, "state", "s", "", "Path to a portfolio JSON file (default: seed portfolio)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	_, _, eng, err := setup()
	if err != nil {
		return err
	}
	st, err := loadState(verifyState)
	if err != nil {
		return err
	}

	reports, err := eng.VerifyAll(contextOrBackground(cmd), &st)
	if err != nil {
		return err
	}
	if failed := observability.NewPrinter(cmd.OutOrStdout()).PrintEquivalence(reports); failed > 0 {
		return fmt.Errorf("%d of %d templates render differently in live and static mode", failed, len(reports))
	}
	return nil
}
