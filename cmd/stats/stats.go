// Package stats handles statistics generation from parsed invoices
package stats

import (
	"fmt"
	"os"

	cmdcommon "hylin/einvoice-csv/cmd/common"
	"hylin/einvoice-csv/cmd/root"
	"hylin/einvoice-csv/internal/common"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/report"
	"hylin/einvoice-csv/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute consumption statistics from an e-invoice CSV export",
	Long: `Parse an e-invoice CSV export and compute consumption statistics:
totals, category breakdown, monthly trends, top merchants, most
frequent items and a voided-invoice summary.

The report is printed as text by default, or rendered with --format
as json, yaml, xlsx, or csv (category table only). Formats other than
text and json/yaml-to-stdout require --output.

Example:
  einvoice-csv stats -i export.csv --format json -o report.json`,
	RunE: statsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "text", "Output format: text, json, yaml, xlsx or csv")
}

func statsFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}

	result, err := cmdcommon.ProcessFile(cmd.Context(), root.App,
		root.SharedFlags.Input, "", root.SharedFlags.Validate, false)
	if err != nil {
		return err
	}
	if !result.Success {
		root.App.GetLogger().Warn("Parse reported errors; statistics cover the recovered invoices")
	}

	rep := report.Build(result.Invoices)

	switch root.Format {
	case "text":
		printTextReport(result.Invoices, rep)
		return nil
	case "json", "yaml":
		data, err := root.App.GetReportGenerator().Generate(rep, root.Format)
		if err != nil {
			return err
		}
		if root.SharedFlags.Output == "" {
			fmt.Println(string(data))
			return nil
		}
		return os.WriteFile(root.SharedFlags.Output, data, 0600)
	case "xlsx":
		if root.SharedFlags.Output == "" {
			return fmt.Errorf("xlsx format requires --output")
		}
		return root.App.GetReportGenerator().WriteXLSX(rep, root.SharedFlags.Output)
	case "csv":
		if root.SharedFlags.Output == "" {
			return fmt.Errorf("csv format requires --output")
		}
		breakdown := rep.Statistics.CategoryBreakdown
		return common.WriteStatsCSV(&breakdown, root.SharedFlags.Output, root.App.Delimiter(), root.App.GetLogger())
	default:
		return fmt.Errorf("unsupported format: %s (use text, json, yaml, xlsx or csv)", root.Format)
	}
}

// printTextReport writes a plain-text report to stdout. Chart series are
// served through the cache so repeated invocations within one process
// reuse computed data.
func printTextReport(invoices []models.Invoice, rep report.Report) {
	s := rep.Statistics
	fmt.Printf("Invoices:       %d\n", s.TotalInvoices)
	fmt.Printf("Total amount:   %s\n", s.TotalAmount.StringFixed(0))
	fmt.Printf("Average amount: %s\n", s.AverageAmount.StringFixed(2))
	if s.TotalInvoices > 0 {
		fmt.Printf("Date range:     %s to %s\n",
			s.DateRange.Start.Format("2006-01-02"), s.DateRange.End.Format("2006-01-02"))
	}
	if rep.Voided.Count > 0 {
		fmt.Printf("Voided:         %d invoices, %s (%.1f%%)\n",
			rep.Voided.Count, rep.Voided.TotalAmount.StringFixed(0), rep.Voided.Percentage)
	}

	cache := root.App.GetCache()
	issued := stats.ValidInvoices(invoices)
	breakdown := cache.GetCategoryBreakdown(issued)
	if breakdown == nil {
		breakdown = stats.CategoryBreakdown(issued)
		cache.SetCategoryBreakdown(issued, breakdown)
	}

	if len(breakdown) > 0 {
		fmt.Println("\nCategories:")
		for _, c := range breakdown {
			fmt.Printf("  %-12s %10s  (%5.1f%%, %d items)\n",
				c.Category, c.Amount.StringFixed(0), c.Percentage, c.Count)
		}
	}

	if len(rep.Monthly) > 0 {
		fmt.Println("\nMonthly:")
		for _, m := range rep.Monthly {
			fmt.Printf("  %s  %10s  (%d invoices, avg %s)\n",
				m.Month, m.TotalAmount.StringFixed(0), m.InvoiceCount, m.AverageAmount.StringFixed(2))
		}
	}

	if len(rep.Merchants) > 0 {
		fmt.Println("\nTop merchants:")
		for _, m := range rep.Merchants {
			fmt.Printf("  %-20s %10s  (%5.1f%%, %d invoices)\n",
				m.MerchantName, m.TotalAmount.StringFixed(0), m.Percentage, m.InvoiceCount)
		}
	}
}
