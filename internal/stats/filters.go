package stats

import (
	"strings"
	"time"

	"hylin/einvoice-csv/internal/dateutils"
	"hylin/einvoice-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Filtering helpers are pure predicates over invoice slices. They never
// mutate their input and compose by chaining.

// ValidInvoices returns only issued invoices; voided invoices are excluded
// from consumption statistics.
func ValidInvoices(invoices []models.Invoice) []models.Invoice {
	return filter(invoices, func(inv models.Invoice) bool {
		return inv.IsIssued()
	})
}

// VoidedInvoices returns only voided invoices.
func VoidedInvoices(invoices []models.Invoice) []models.Invoice {
	return filter(invoices, func(inv models.Invoice) bool {
		return inv.Status == models.StatusVoided
	})
}

// ByDateRange keeps invoices dated within [start, end], inclusive by
// calendar day.
func ByDateRange(invoices []models.Invoice, start, end time.Time) []models.Invoice {
	return filter(invoices, func(inv models.Invoice) bool {
		return dateutils.CompareDates(inv.InvoiceDate, start) >= 0 &&
			dateutils.CompareDates(inv.InvoiceDate, end) <= 0
	})
}

// ByMerchant keeps invoices whose merchant name contains the query,
// case-insensitively.
func ByMerchant(invoices []models.Invoice, query string) []models.Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	return filter(invoices, func(inv models.Invoice) bool {
		return strings.Contains(strings.ToLower(inv.MerchantName), q)
	})
}

// ByAmountRange keeps invoices with min <= totalAmount <= max.
func ByAmountRange(invoices []models.Invoice, min, max decimal.Decimal) []models.Invoice {
	return filter(invoices, func(inv models.Invoice) bool {
		return inv.TotalAmount.GreaterThanOrEqual(min) && inv.TotalAmount.LessThanOrEqual(max)
	})
}

// ByCategory keeps invoices where any item belongs to the category.
func ByCategory(invoices []models.Invoice, category string) []models.Invoice {
	return filter(invoices, func(inv models.Invoice) bool {
		for _, item := range inv.Items {
			if item.Category == category {
				return true
			}
		}
		return false
	})
}

func filter(invoices []models.Invoice, keep func(models.Invoice) bool) []models.Invoice {
	result := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if keep(inv) {
			result = append(result, inv)
		}
	}
	return result
}
