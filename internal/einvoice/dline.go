package einvoice

import (
	"strings"

	"hylin/einvoice-csv/internal/amountutils"
	"hylin/einvoice-csv/internal/models"
	"hylin/einvoice-csv/internal/parsererror"

	"github.com/google/uuid"
)

// D row layout: D,invoiceNumber,<amount-or-itemName>,<itemName-or-amount>.
// Export variants disagree on the order of the last two fields.
const minDetailFields = 4

// parseDetailLine converts a raw D row into an invoice item. The item name
// and amount may appear in either order: if exactly one of the two fields
// looks like a pure number, that one is the amount. When both or neither
// do, the legacy order (name first, amount second) is assumed.
func parseDetailLine(row []string, rowNumber int, categorize func(string) string) (models.InvoiceItem, error) {
	if len(row) < minDetailFields {
		return models.InvoiceItem{}, &parsererror.RowError{
			Row:     rowNumber,
			Message: "detail line requires at least 4 fields",
			Raw:     row,
		}
	}

	invoiceNumber := trimField(row[1])
	if invoiceNumber == "" {
		return models.InvoiceItem{}, &parsererror.RowError{
			Row:     rowNumber,
			Field:   "invoiceNumber",
			Message: "invoice number is empty",
			Raw:     row,
		}
	}

	field3 := trimField(row[2])
	field4 := trimField(row[3])

	var itemName, amountStr string
	switch {
	case amountutils.IsAmountLike(field3) && !amountutils.IsAmountLike(field4):
		amountStr, itemName = field3, field4
	case amountutils.IsAmountLike(field4) && !amountutils.IsAmountLike(field3):
		itemName, amountStr = field3, field4
	default:
		// Both or neither are numeric: keep the legacy column order.
		itemName, amountStr = field3, field4
	}

	if itemName == "" {
		return models.InvoiceItem{}, &parsererror.RowError{
			Row:     rowNumber,
			Field:   "itemName",
			Message: "item name is empty",
			Raw:     row,
		}
	}

	amount, err := amountutils.ParseAmount(amountStr)
	if err != nil {
		return models.InvoiceItem{}, &parsererror.RowError{
			Row:     rowNumber,
			Field:   "amount",
			Message: err.Error(),
			Raw:     row,
		}
	}

	return models.InvoiceItem{
		ID:            uuid.New().String(),
		InvoiceNumber: invoiceNumber,
		ItemName:      itemName,
		Amount:        amount,
		Category:      categorize(itemName),
	}, nil
}

func trimField(s string) string {
	return strings.TrimSpace(s)
}
