package einvoice

import (
	"time"

	"hylin/einvoice-csv/internal/amountutils"
	"hylin/einvoice-csv/internal/dateutils"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// headerRecord is a parsed M row awaiting reconciliation with its detail
// rows. It is internal to the accumulator and never escapes the parser.
type headerRecord struct {
	row           int
	carrierType   string
	carrierNumber string
	invoiceDate   time.Time
	merchantID    string
	merchantName  string
	invoiceNumber string
	totalAmount   decimal.Decimal
	status        models.InvoiceStatus
}

// M row layout: M,carrierType,carrierNumber,invoiceDate,merchantId,
// merchantName,invoiceNumber,totalAmount[,status,...]. The status field and
// anything after it are optional; extra trailing fields are tolerated.
const minMainFields = 8

// parseMainLine converts a raw M row into a header record. All string
// fields are trimmed; the date and amount fields must parse.
func parseMainLine(row []string, rowNumber int) (headerRecord, error) {
	if len(row) < minMainFields {
		return headerRecord{}, &parsererror.RowError{
			Row:     rowNumber,
			Message: "main line requires at least 8 fields",
			Raw:     row,
		}
	}

	fields := trimFields(row)

	invoiceDate, err := dateutils.ParseInvoiceDate(fields[3])
	if err != nil {
		return headerRecord{}, &parsererror.RowError{
			Row:     rowNumber,
			Field:   "invoiceDate",
			Message: err.Error(),
			Raw:     row,
		}
	}

	totalAmount, err := amountutils.ParseAmount(fields[7])
	if err != nil {
		return headerRecord{}, &parsererror.RowError{
			Row:     rowNumber,
			Field:   "totalAmount",
			Message: err.Error(),
			Raw:     row,
		}
	}

	status := models.StatusIssued
	if len(fields) > 8 {
		status = models.ParseInvoiceStatus(fields[8])
	}

	return headerRecord{
		row:           rowNumber,
		carrierType:   fields[1],
		carrierNumber: fields[2],
		invoiceDate:   invoiceDate,
		merchantID:    fields[4],
		merchantName:  fields[5],
		invoiceNumber: fields[6],
		totalAmount:   totalAmount,
		status:        status,
	}, nil
}

func trimFields(row []string) []string {
	fields := make([]string, len(row))
	for i, f := range row {
		fields[i] = trimField(f)
	}
	return fields
}
