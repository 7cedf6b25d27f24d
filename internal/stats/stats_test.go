package stats

import (
	"fmt"
	"testing"
	"time"

	"hylin/einvoice-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func invoice(number string, amount int64, date time.Time, merchant string, items ...models.InvoiceItem) models.Invoice {
	return models.Invoice{
		InvoiceNumber: number,
		TotalAmount:   decimal.NewFromInt(amount),
		InvoiceDate:   date,
		MerchantName:  merchant,
		Status:        models.StatusIssued,
		Items:         items,
	}
}

func item(name string, amount int64, category string) models.InvoiceItem {
	return models.InvoiceItem{
		ItemName: name,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
	}
}

func TestBasicEmptyInput(t *testing.T) {
	s := Basic(nil)

	assert.True(t, s.TotalAmount.IsZero())
	assert.True(t, s.AverageAmount.IsZero())
	assert.Equal(t, 0, s.TotalInvoices)
	assert.NotNil(t, s.CategoryBreakdown)
	assert.Empty(t, s.CategoryBreakdown)
	assert.NotNil(t, s.TimeSeriesData)
	assert.Empty(t, s.TimeSeriesData)
}

func TestBasic(t *testing.T) {
	invoices := []models.Invoice{
		invoice("INV1", 100, day(15), "全家"),
		invoice("INV2", 200, day(10), "7-11"),
		invoice("INV3", 50, day(20), "全聯"),
	}

	s := Basic(invoices)

	assert.Equal(t, "350", s.TotalAmount.String())
	assert.Equal(t, 3, s.TotalInvoices)
	assert.Equal(t, "116.67", s.AverageAmount.StringFixed(2))
	assert.Equal(t, day(10), s.DateRange.Start)
	assert.Equal(t, day(20), s.DateRange.End)
}

func TestCategoryBreakdown(t *testing.T) {
	invoices := []models.Invoice{
		invoice("INV1", 150, day(1), "全家",
			item("咖啡", 100, models.CategoryBeverages),
			item("餅乾", 50, models.CategorySnacks)),
		invoice("INV2", 60, day(2), "7-11",
			item("紅茶", 60, models.CategoryBeverages)),
	}

	breakdown := CategoryBreakdown(invoices)
	require.Len(t, breakdown, 2)

	// Sorted descending by amount.
	assert.Equal(t, models.CategoryBeverages, breakdown[0].Category)
	assert.Equal(t, "160", breakdown[0].Amount.String())
	assert.Equal(t, 2, breakdown[0].Count)
	assert.Equal(t, models.CategorySnacks, breakdown[1].Category)
	assert.Equal(t, "50", breakdown[1].Amount.String())

	sum := 0.0
	for _, c := range breakdown {
		sum += c.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestCategoryBreakdownNoItems(t *testing.T) {
	invoices := []models.Invoice{invoice("INV1", 100, day(1), "全家")}
	assert.Empty(t, CategoryBreakdown(invoices))
}

func TestTimeSeries(t *testing.T) {
	invoices := []models.Invoice{
		invoice("INV1", 100, day(15), "全家"),
		invoice("INV2", 50, day(15), "全家"),
		invoice("INV3", 200, day(3), "7-11"),
	}

	points := TimeSeries(invoices)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-01-03", points[0].Date)
	assert.Equal(t, "200", points[0].Amount.String())
	assert.Equal(t, 1, points[0].Count)
	assert.Equal(t, "2024-01-15", points[1].Date)
	assert.Equal(t, "150", points[1].Amount.String())
	assert.Equal(t, 2, points[1].Count)
}

func TestMonthlyTimeSeries(t *testing.T) {
	invoices := []models.Invoice{
		invoice("INV1", 100, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), "全家"),
		invoice("INV2", 50, time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC), "7-11"),
		invoice("INV3", 200, time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), "全聯"),
	}

	points := MonthlyTimeSeries(invoices)
	require.Len(t, points, 2)

	assert.Equal(t, "2024-01", points[0].Date)
	assert.Equal(t, "150", points[0].Amount.String())
	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, "2024-02", points[1].Date)
	assert.Equal(t, "200", points[1].Amount.String())
	assert.Equal(t, 1, points[1].Count)
}

func TestMonthly(t *testing.T) {
	invoices := []models.Invoice{
		invoice("INV1", 100, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "全家",
			item("咖啡", 100, models.CategoryBeverages)),
		invoice("INV2", 300, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), "7-11"),
		invoice("INV3", 100, time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC), "全聯"),
	}

	months := Monthly(invoices)
	require.Len(t, months, 2)

	assert.Equal(t, "2024-01", months[0].Month)
	assert.Equal(t, "400", months[0].TotalAmount.String())
	assert.Equal(t, 2, months[0].InvoiceCount)
	assert.Equal(t, "200", months[0].AverageAmount.String())
	assert.Empty(t, months[0].CategoryBreakdown)

	assert.Equal(t, "2024-02", months[1].Month)
	require.Len(t, months[1].CategoryBreakdown, 1)
	assert.Equal(t, models.CategoryBeverages, months[1].CategoryBreakdown[0].Category)
}

func TestMerchantsTopTen(t *testing.T) {
	var invoices []models.Invoice
	for i := 0; i < 15; i++ {
		invoices = append(invoices,
			invoice(fmt.Sprintf("INV%d", i), int64(100+i), day(1+i%28), fmt.Sprintf("商店%02d", i)))
	}

	merchants := Merchants(invoices)
	require.Len(t, merchants, 10)

	// Descending by amount: the highest-numbered merchants spent the most.
	assert.Equal(t, "商店14", merchants[0].MerchantName)
	assert.Equal(t, "114", merchants[0].TotalAmount.String())
	for i := 1; i < len(merchants); i++ {
		assert.True(t, merchants[i].TotalAmount.LessThanOrEqual(merchants[i-1].TotalAmount))
	}
}

func TestItemFrequency(t *testing.T) {
	invoices := []models.Invoice{
		invoice("INV1", 0, day(1), "全家",
			item("咖啡", 50, models.CategoryBeverages),
			item("餅乾", 30, models.CategorySnacks)),
		invoice("INV2", 0, day(2), "全家",
			item("咖啡", 55, models.CategoryBeverages)),
	}

	freqs := ItemFrequency(invoices)
	require.Len(t, freqs, 2)

	assert.Equal(t, "咖啡", freqs[0].ItemName)
	assert.Equal(t, 2, freqs[0].Frequency)
	assert.Equal(t, "105", freqs[0].TotalAmount.String())
	assert.Equal(t, "餅乾", freqs[1].ItemName)
	assert.Equal(t, 1, freqs[1].Frequency)
}

func TestItemFrequencyCapsAtFifty(t *testing.T) {
	inv := invoice("INV1", 0, day(1), "全家")
	for i := 0; i < 60; i++ {
		inv.Items = append(inv.Items, item(fmt.Sprintf("品項%02d", i), 10, models.CategoryOther))
	}

	freqs := ItemFrequency([]models.Invoice{inv})
	assert.Len(t, freqs, 50)
	// All frequencies tie, so first-seen order is preserved.
	assert.Equal(t, "品項00", freqs[0].ItemName)
	assert.Equal(t, "品項49", freqs[49].ItemName)
}

func TestVoided(t *testing.T) {
	all := []models.Invoice{
		invoice("INV1", 100, day(1), "全家"),
		invoice("INV2", 200, day(2), "全家"),
		{InvoiceNumber: "INV3", TotalAmount: decimal.NewFromInt(300), InvoiceDate: day(3),
			MerchantName: "全家", Status: models.StatusVoided},
		{InvoiceNumber: "INV4", TotalAmount: decimal.NewFromInt(100), InvoiceDate: day(4),
			MerchantName: "全家", Status: models.StatusVoided},
	}

	voided := VoidedInvoices(all)
	summary := Voided(all, voided)

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "400", summary.TotalAmount.String())
	assert.InDelta(t, 50.0, summary.Percentage, 0.001)
}

func TestVoidedEmpty(t *testing.T) {
	summary := Voided(nil, nil)
	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.TotalAmount.IsZero())
	assert.Equal(t, 0.0, summary.Percentage)
}
