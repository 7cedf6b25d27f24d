// Package common provides the normalized CSV export shared by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"hylin/einvoice-csv/internal/dateutils"
	"hylin/einvoice-csv/internal/logging"
	"hylin/einvoice-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// InvoiceCSVRow is one row of the normalized export: invoice fields joined
// with one line item. Struct tags drive gocsv marshaling.
type InvoiceCSVRow struct {
	InvoiceNumber string `csv:"發票號碼"`
	InvoiceDate   string `csv:"發票日期"`
	MerchantID    string `csv:"商店統編"`
	MerchantName  string `csv:"商店店名"`
	CarrierType   string `csv:"載具類別"`
	CarrierNumber string `csv:"載具號碼"`
	Status        string `csv:"狀態"`
	TotalAmount   string `csv:"總金額"`
	ItemName      string `csv:"品項名稱"`
	ItemAmount    string `csv:"小計"`
	Category      string `csv:"分類"`
}

// FlattenInvoices converts invoices to export rows, one row per item.
// An invoice without items still emits a single row with empty item fields.
func FlattenInvoices(invoices []models.Invoice) []InvoiceCSVRow {
	var rows []InvoiceCSVRow
	for _, inv := range invoices {
		base := InvoiceCSVRow{
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   dateutils.ToISODate(inv.InvoiceDate),
			MerchantID:    inv.MerchantID,
			MerchantName:  inv.MerchantName,
			CarrierType:   inv.CarrierType,
			CarrierNumber: inv.CarrierNumber,
			Status:        string(inv.Status),
			TotalAmount:   inv.TotalAmount.StringFixed(0),
		}

		if len(inv.Items) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, item := range inv.Items {
			row := base
			row.ItemName = item.ItemName
			row.ItemAmount = item.Amount.StringFixed(0)
			row.Category = item.Category
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteInvoicesToCSV writes invoices to a normalized CSV file. All commands
// use this function so export output stays consistent.
func WriteInvoicesToCSV(invoices []models.Invoice, csvFile string, delimiter rune, logger logging.Logger) error {
	if invoices == nil {
		return fmt.Errorf("cannot write nil invoices to CSV")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}

	logger.Info("Writing invoices to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(invoices)})

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := FlattenInvoices(invoices)

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal invoices to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Successfully wrote invoices to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return nil
}
