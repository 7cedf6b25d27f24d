// Package report renders consumption statistics as JSON, YAML or an XLSX
// workbook for downstream consumers.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/stats"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Report bundles every statistics view computed from one invoice set.
type Report struct {
	GeneratedAt  time.Time                `json:"generatedAt" yaml:"generated_at"`
	Statistics   models.Statistics        `json:"statistics" yaml:"statistics"`
	Monthly      []models.MonthlyStat     `json:"monthly" yaml:"monthly"`
	MonthlyTrend []models.TimeSeriesPoint `json:"monthlyTrend" yaml:"monthly_trend"`
	Merchants    []models.MerchantStat    `json:"merchants" yaml:"merchants"`
	Items        []models.ItemFrequency   `json:"items" yaml:"items"`
	Voided       models.VoidedStats       `json:"voided" yaml:"voided"`
}

// Build computes a full report from reconciled invoices. Voided invoices
// are excluded from consumption views and summarized separately.
func Build(invoices []models.Invoice) Report {
	issued := stats.ValidInvoices(invoices)
	voided := stats.VoidedInvoices(invoices)

	return Report{
		GeneratedAt:  time.Now(),
		Statistics:   stats.Basic(issued),
		Monthly:      stats.Monthly(issued),
		MonthlyTrend: stats.MonthlyTimeSeries(issued),
		Merchants:    stats.Merchants(issued),
		Items:        stats.ItemFrequency(issued),
		Voided:       stats.Voided(invoices, voided),
	}
}

// Generator renders reports in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate renders the report in the given format ("json" or "yaml").
func (g *Generator) Generate(report Report, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Sheet names of the XLSX workbook.
const (
	sheetSummary    = "Summary"
	sheetCategories = "Categories"
	sheetMonthly    = "Monthly"
	sheetMerchants  = "Merchants"
	sheetItems      = "Items"
)

// WriteXLSX writes the report as an XLSX workbook with one sheet per view.
func (g *Generator) WriteXLSX(report Report, path string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := g.writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := g.writeCategorySheet(f, report.Statistics.CategoryBreakdown); err != nil {
		return err
	}
	if err := g.writeMonthlySheet(f, report.Monthly); err != nil {
		return err
	}
	if err := g.writeMerchantSheet(f, report.Merchants); err != nil {
		return err
	}
	if err := g.writeItemSheet(f, report.Items); err != nil {
		return err
	}

	// The default sheet excelize creates is replaced by Summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		g.logger.WithError(err).Warn("Failed to drop default sheet")
	}

	if err := f.SaveAs(path); err != nil {
		g.logger.WithError(err).Error("Failed to save XLSX report")
		return fmt.Errorf("error saving XLSX report: %w", err)
	}

	g.logger.Info("Wrote XLSX report",
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}

func (g *Generator) writeSummarySheet(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}

	s := report.Statistics
	rows := [][]interface{}{
		{"Generated", report.GeneratedAt.Format(time.RFC3339)},
		{"Total amount", s.TotalAmount.String()},
		{"Invoices", s.TotalInvoices},
		{"Average amount", s.AverageAmount.String()},
		{"From", s.DateRange.Start.Format("2006-01-02")},
		{"To", s.DateRange.End.Format("2006-01-02")},
		{"Voided invoices", report.Voided.Count},
		{"Voided amount", report.Voided.TotalAmount.String()},
		{"Voided rate %", report.Voided.Percentage},
	}
	return writeRows(f, sheetSummary, nil, rows)
}

func (g *Generator) writeCategorySheet(f *excelize.File, breakdown []models.CategoryStat) error {
	if _, err := f.NewSheet(sheetCategories); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	rows := make([][]interface{}, 0, len(breakdown))
	for _, c := range breakdown {
		rows = append(rows, []interface{}{c.Category, c.Amount.String(), c.Count, c.Percentage})
	}
	return writeRows(f, sheetCategories, []interface{}{"Category", "Amount", "Count", "Percentage"}, rows)
}

func (g *Generator) writeMonthlySheet(f *excelize.File, monthly []models.MonthlyStat) error {
	if _, err := f.NewSheet(sheetMonthly); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	rows := make([][]interface{}, 0, len(monthly))
	for _, m := range monthly {
		rows = append(rows, []interface{}{m.Month, m.TotalAmount.String(), m.InvoiceCount, m.AverageAmount.String()})
	}
	return writeRows(f, sheetMonthly, []interface{}{"Month", "Total", "Invoices", "Average"}, rows)
}

func (g *Generator) writeMerchantSheet(f *excelize.File, merchants []models.MerchantStat) error {
	if _, err := f.NewSheet(sheetMerchants); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	rows := make([][]interface{}, 0, len(merchants))
	for _, m := range merchants {
		rows = append(rows, []interface{}{m.MerchantName, m.TotalAmount.String(), m.InvoiceCount, m.Percentage})
	}
	return writeRows(f, sheetMerchants, []interface{}{"Merchant", "Total", "Invoices", "Percentage"}, rows)
}

func (g *Generator) writeItemSheet(f *excelize.File, items []models.ItemFrequency) error {
	if _, err := f.NewSheet(sheetItems); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, []interface{}{it.ItemName, it.Frequency, it.TotalAmount.String()})
	}
	return writeRows(f, sheetItems, []interface{}{"Item", "Frequency", "Total"}, rows)
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	rowNum := 1
	if header != nil {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, cell, &header); err != nil {
			return fmt.Errorf("error writing header row: %w", err)
		}
		rowNum++
	}
	for _, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row: %w", err)
		}
		rowNum++
	}
	return nil
}
