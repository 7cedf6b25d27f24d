// Package parse handles parsing of a single e-invoice CSV export
package parse

import (
	"fmt"
	"os"

	cmdcommon "hylin/einvoice-csv/cmd/common"
	"hylin/einvoice-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse an e-invoice CSV export into normalized invoices",
	Long: `Parse an e-invoice carrier CSV export (M/D line format), reconcile
invoice headers with their line items and categorize each item.

When --output is given, the normalized invoices are written as CSV
(or XLSX for a .xlsx path). Without it, a summary is printed.

Example:
  einvoice-csv parse -i export.csv -o invoices.csv`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}

	result, err := cmdcommon.ProcessFile(cmd.Context(), root.App,
		root.SharedFlags.Input, root.SharedFlags.Output,
		root.SharedFlags.Validate, true)
	if err != nil {
		return err
	}

	cmdcommon.PrintResultSummary(result)
	if !result.Success {
		os.Exit(1)
	}
	return nil
}
