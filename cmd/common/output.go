package common

import (
	"path/filepath"
	"strings"

	"hylin/einvoice-csv/internal/common"
	"hylin/einvoice-csv/internal/container"
	"hylin/einvoice-csv/internal/models"
)

// WriteOutput writes invoices to the given path, choosing the format from
// the file extension (.xlsx for a workbook, CSV otherwise).
func WriteOutput(app *container.Container, invoices []models.Invoice, outputFile string) error {
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".xlsx":
		return common.WriteInvoicesToXLSX(invoices, outputFile, app.GetLogger())
	default:
		return common.WriteInvoicesToCSV(invoices, outputFile, app.Delimiter(), app.GetLogger())
	}
}
