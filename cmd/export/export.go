// Package export handles exporting parsed invoices to CSV or XLSX
package export

import (
	"fmt"
	"os"

	cmdcommon "hylin/einvoice-csv/cmd/common"
	"hylin/einvoice-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export normalized invoices to a CSV or XLSX file",
	Long: `Parse an e-invoice CSV export and write the reconciled, categorized
invoices to the output file. The format is chosen from the output
extension: .xlsx produces a workbook, anything else normalized CSV.

Example:
  einvoice-csv export -i export.csv -o invoices.xlsx`,
	RunE: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}
	if root.SharedFlags.Output == "" {
		return fmt.Errorf("output file is required (use -o)")
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
