package chartcache

import (
	"testing"
	"time"

	"hylin/einvoice-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoices() []models.Invoice {
	return []models.Invoice{
		{ID: "a", TotalAmount: decimal.NewFromInt(100), Status: models.StatusIssued},
		{ID: "b", TotalAmount: decimal.NewFromInt(200), Status: models.StatusIssued},
	}
}

func TestCacheHitReturnsStoredData(t *testing.T) {
	c := New(DefaultTTL)
	invoices := testInvoices()
	data := []models.TimeSeriesPoint{{Date: "2024-01-15", Amount: decimal.NewFromInt(300), Count: 2}}

	assert.Nil(t, c.GetDailyTimeSeries(invoices))

	c.SetDailyTimeSeries(invoices, data)
	got := c.GetDailyTimeSeries(invoices)
	require.NotNil(t, got)
	assert.Equal(t, data, got)
}

func TestCacheMissOnContentChange(t *testing.T) {
	c := New(DefaultTTL)
	invoices := testInvoices()
	c.SetDailyTimeSeries(invoices, []models.TimeSeriesPoint{{Date: "2024-01-15"}})

	// Mutating a total amount changes the content hash.
	invoices[0].TotalAmount = decimal.NewFromInt(999)
	assert.Nil(t, c.GetDailyTimeSeries(invoices))
}

func TestCacheMissOnStatusChange(t *testing.T) {
	c := New(DefaultTTL)
	invoices := testInvoices()
	c.SetMonthlyStats(invoices, []models.MonthlyStat{{Month: "2024-01"}})

	invoices[1].Status = models.StatusVoided
	assert.Nil(t, c.GetMonthlyStats(invoices))
}

func TestCacheHashIsOrderInsensitive(t *testing.T) {
	invoices := testInvoices()
	reversed := []models.Invoice{invoices[1], invoices[0]}
	assert.Equal(t, Hash(invoices), Hash(reversed))
}

func TestCacheExpiry(t *testing.T) {
	c := New(time.Minute)
	current := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	invoices := testInvoices()
	c.SetCategoryBreakdown(invoices, []models.CategoryStat{{Category: "飲料"}})
	require.NotNil(t, c.GetCategoryBreakdown(invoices))

	current = current.Add(59 * time.Second)
	assert.NotNil(t, c.GetCategoryBreakdown(invoices))

	current = current.Add(2 * time.Second)
	assert.Nil(t, c.GetCategoryBreakdown(invoices))
}

func TestClearExpired(t *testing.T) {
	c := New(time.Minute)
	current := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	invoices := testInvoices()
	c.SetDailyTimeSeries(invoices, []models.TimeSeriesPoint{{Date: "2024-01-15"}})
	c.SetMonthlyStats(invoices, []models.MonthlyStat{{Month: "2024-01"}})

	current = current.Add(30 * time.Second)
	c.SetCategoryBreakdown(invoices, []models.CategoryStat{{Category: "飲料"}})

	current = current.Add(45 * time.Second)
	c.ClearExpired()

	// The first two entries are past TTL and swept; the third survives.
	assert.Nil(t, c.dailyData)
	assert.Nil(t, c.monthlyData)
	assert.NotNil(t, c.GetCategoryBreakdown(invoices))
}

func TestClear(t *testing.T) {
	c := New(DefaultTTL)
	invoices := testInvoices()
	c.SetDailyTimeSeries(invoices, []models.TimeSeriesPoint{{Date: "2024-01-15"}})

	c.Clear()
	assert.Nil(t, c.GetDailyTimeSeries(invoices))
}

func TestHashEmptySet(t *testing.T) {
	assert.Equal(t, uint32(0), Hash(nil))
	assert.Equal(t, Hash(nil), Hash([]models.Invoice{}))
}
