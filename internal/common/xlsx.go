package common

import (
	"fmt"
	"os"
	"path/filepath"

	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"

	"github.com/xuri/excelize/v2"
)

const invoiceSheet = "Invoices"

// WriteInvoicesToXLSX writes invoices to an XLSX workbook with the same
// columns as the normalized CSV export.
func WriteInvoicesToXLSX(invoices []models.Invoice, xlsxFile string, logger logging.Logger) error {
	if invoices == nil {
		return fmt.Errorf("cannot write nil invoices to XLSX")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := os.MkdirAll(filepath.Dir(xlsxFile), 0750); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return fmt.Errorf("error renaming sheet: %w", err)
	}

	header := []interface{}{
		"發票號碼", "發票日期", "商店統編", "商店店名", "載具類別",
		"載具號碼", "狀態", "總金額", "品項名稱", "小計", "分類",
	}
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetSheetRow(invoiceSheet, cell, &header); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, row := range FlattenInvoices(invoices) {
		values := []interface{}{
			row.InvoiceNumber, row.InvoiceDate, row.MerchantID, row.MerchantName,
			row.CarrierType, row.CarrierNumber, row.Status, row.TotalAmount,
			row.ItemName, row.ItemAmount, row.Category,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(invoiceSheet, cell, &values); err != nil {
			return fmt.Errorf("error writing row: %w", err)
		}
	}

	if err := f.SaveAs(xlsxFile); err != nil {
		logger.WithError(err).Error("Failed to save XLSX file")
		return fmt.Errorf("error saving XLSX file: %w", err)
	}

	logger.Info("Successfully wrote invoices to XLSX file",
		logging.Field{Key: logging.FieldOutputFile, Value: xlsxFile},
		logging.Field{Key: logging.FieldCount, Value: len(invoices)})
	return nil
}
