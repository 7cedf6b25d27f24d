// Package stats computes aggregate consumption statistics over reconciled
// invoices. Every function is pure and deterministic; callers pre-filter to
// issued invoices with ValidInvoices unless a function states otherwise.
package stats

import (
	"sort"
	"time"

	"hylin/einvoice-csv/internal/dateutils"
	"hylin/einvoice-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Result list caps.
const (
	topMerchants = 10
	topItems     = 50
)

// Basic computes the aggregate statistics for a set of invoices. Empty
// input yields a zero-valued result, not an error.
func Basic(invoices []models.Invoice) models.Statistics {
	if len(invoices) == 0 {
		return models.Statistics{
			TotalAmount:       decimal.Zero,
			AverageAmount:     decimal.Zero,
			CategoryBreakdown: []models.CategoryStat{},
			TimeSeriesData:    []models.TimeSeriesPoint{},
		}
	}

	total := decimal.Zero
	dateRange := models.DateRange{Start: invoices[0].InvoiceDate, End: invoices[0].InvoiceDate}
	for _, inv := range invoices {
		total = total.Add(inv.TotalAmount)
		if inv.InvoiceDate.Before(dateRange.Start) {
			dateRange.Start = inv.InvoiceDate
		}
		if inv.InvoiceDate.After(dateRange.End) {
			dateRange.End = inv.InvoiceDate
		}
	}

	return models.Statistics{
		TotalAmount:       total,
		TotalInvoices:     len(invoices),
		AverageAmount:     total.Div(decimal.NewFromInt(int64(len(invoices)))).Round(2),
		DateRange:         dateRange,
		CategoryBreakdown: CategoryBreakdown(invoices),
		TimeSeriesData:    TimeSeries(invoices),
	}
}

// CategoryBreakdown aggregates by item category across all items of all
// invoices. Percentages are relative to the total item amount across all
// categories; the result is sorted descending by amount.
func CategoryBreakdown(invoices []models.Invoice) []models.CategoryStat {
	amounts := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	total := decimal.Zero

	for _, inv := range invoices {
		for _, item := range inv.Items {
			amounts[item.Category] = amounts[item.Category].Add(item.Amount)
			counts[item.Category]++
			total = total.Add(item.Amount)
		}
	}

	breakdown := make([]models.CategoryStat, 0, len(amounts))
	for category, amount := range amounts {
		stat := models.CategoryStat{
			Category: category,
			Amount:   amount,
			Count:    counts[category],
		}
		if !total.IsZero() {
			stat.Percentage, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		breakdown = append(breakdown, stat)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown
}

// TimeSeries buckets invoices by calendar day, sorted ascending by date.
func TimeSeries(invoices []models.Invoice) []models.TimeSeriesPoint {
	return timeSeriesBy(invoices, dateutils.ToISODate)
}

// MonthlyTimeSeries buckets invoices by calendar month, sorted ascending.
func MonthlyTimeSeries(invoices []models.Invoice) []models.TimeSeriesPoint {
	return timeSeriesBy(invoices, dateutils.MonthKey)
}

func timeSeriesBy(invoices []models.Invoice, bucket func(time.Time) string) []models.TimeSeriesPoint {
	amounts := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, inv := range invoices {
		key := bucket(inv.InvoiceDate)
		amounts[key] = amounts[key].Add(inv.TotalAmount)
		counts[key]++
	}

	points := make([]models.TimeSeriesPoint, 0, len(amounts))
	for date, amount := range amounts {
		points = append(points, models.TimeSeriesPoint{
			Date:   date,
			Amount: amount,
			Count:  counts[date],
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// Monthly computes per-month totals with a category breakdown restricted to
// each month's invoices, sorted chronologically.
func Monthly(invoices []models.Invoice) []models.MonthlyStat {
	byMonth := make(map[string][]models.Invoice)
	for _, inv := range invoices {
		key := dateutils.MonthKey(inv.InvoiceDate)
		byMonth[key] = append(byMonth[key], inv)
	}

	months := make([]models.MonthlyStat, 0, len(byMonth))
	for month, monthInvoices := range byMonth {
		total := decimal.Zero
		for _, inv := range monthInvoices {
			total = total.Add(inv.TotalAmount)
		}
		months = append(months, models.MonthlyStat{
			Month:             month,
			TotalAmount:       total,
			InvoiceCount:      len(monthInvoices),
			AverageAmount:     total.Div(decimal.NewFromInt(int64(len(monthInvoices)))).Round(2),
			CategoryBreakdown: CategoryBreakdown(monthInvoices),
		})
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return months
}

// Merchants aggregates by merchant name and returns the top 10 by total
// amount. Percentages are relative to the grand total across all merchants.
func Merchants(invoices []models.Invoice) []models.MerchantStat {
	amounts := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	grandTotal := decimal.Zero

	for _, inv := range invoices {
		amounts[inv.MerchantName] = amounts[inv.MerchantName].Add(inv.TotalAmount)
		counts[inv.MerchantName]++
		grandTotal = grandTotal.Add(inv.TotalAmount)
	}

	merchants := make([]models.MerchantStat, 0, len(amounts))
	for name, amount := range amounts {
		stat := models.MerchantStat{
			MerchantName: name,
			TotalAmount:  amount,
			InvoiceCount: counts[name],
		}
		if !grandTotal.IsZero() {
			stat.Percentage, _ = amount.Div(grandTotal).Mul(decimal.NewFromInt(100)).Float64()
		}
		merchants = append(merchants, stat)
	}

	sort.Slice(merchants, func(i, j int) bool {
		if !merchants[i].TotalAmount.Equal(merchants[j].TotalAmount) {
			return merchants[i].TotalAmount.GreaterThan(merchants[j].TotalAmount)
		}
		return merchants[i].MerchantName < merchants[j].MerchantName
	})

	if len(merchants) > topMerchants {
		merchants = merchants[:topMerchants]
	}
	return merchants
}

// ItemFrequency aggregates by item name across invoices and returns the top
// 50 by frequency. Ties keep first-seen order.
func ItemFrequency(invoices []models.Invoice) []models.ItemFrequency {
	index := make(map[string]int)
	var freqs []models.ItemFrequency

	for _, inv := range invoices {
		for _, item := range inv.Items {
			i, seen := index[item.ItemName]
			if !seen {
				index[item.ItemName] = len(freqs)
				freqs = append(freqs, models.ItemFrequency{
					ItemName:    item.ItemName,
					TotalAmount: decimal.Zero,
				})
				i = len(freqs) - 1
			}
			freqs[i].Frequency++
			freqs[i].TotalAmount = freqs[i].TotalAmount.Add(item.Amount)
		}
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Frequency > freqs[j].Frequency
	})

	if len(freqs) > topItems {
		freqs = freqs[:topItems]
	}
	return freqs
}

// Voided summarizes voided invoices relative to all invoices, issued and
// voided alike.
func Voided(allInvoices, voidedInvoices []models.Invoice) models.VoidedStats {
	total := decimal.Zero
	for _, inv := range voidedInvoices {
		total = total.Add(inv.TotalAmount)
	}

	result := models.VoidedStats{
		Count:       len(voidedInvoices),
		TotalAmount: total,
	}
	if len(allInvoices) > 0 {
		result.Percentage = float64(len(voidedInvoices)) / float64(len(allInvoices)) * 100
	}
	return result
}
