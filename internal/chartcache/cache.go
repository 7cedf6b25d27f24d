// Package chartcache memoizes derived chart statistics keyed by a content
// hash of the invoice set. The hash is a 32-bit polynomial rolling hash:
// collisions are a tolerated risk for a cache, not an integrity mechanism.
package chartcache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"hylin/einvoice-csv/internal/models"
)

// DefaultTTL is how long an entry stays valid after being set.
const DefaultTTL = 5 * time.Minute

type entry struct {
	timestamp time.Time
	hash      uint32
	set       bool
}

func (e entry) valid(now time.Time, hash uint32, ttl time.Duration) bool {
	return e.set && now.Sub(e.timestamp) < ttl && e.hash == hash
}

// Cache memoizes the three chart derivations. Construct instances with New
// and pass them explicitly; a zero Cache is not usable.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	daily        entry
	dailyData    []models.TimeSeriesPoint
	monthly      entry
	monthlyData  []models.MonthlyStat
	category     entry
	categoryData []models.CategoryStat
}

// New creates a cache with the given TTL; ttl <= 0 uses DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// GetDailyTimeSeries returns the cached daily time series for this invoice
// set, or nil on a miss (expired or content changed).
func (c *Cache) GetDailyTimeSeries(invoices []models.Invoice) []models.TimeSeriesPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.daily.valid(c.now(), Hash(invoices), c.ttl) {
		return c.dailyData
	}
	return nil
}

// SetDailyTimeSeries stores the daily time series for this invoice set.
func (c *Cache) SetDailyTimeSeries(invoices []models.Invoice, data []models.TimeSeriesPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.daily = entry{timestamp: c.now(), hash: Hash(invoices), set: true}
	c.dailyData = data
}

// GetMonthlyStats returns the cached monthly statistics, or nil on a miss.
func (c *Cache) GetMonthlyStats(invoices []models.Invoice) []models.MonthlyStat {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.monthly.valid(c.now(), Hash(invoices), c.ttl) {
		return c.monthlyData
	}
	return nil
}

// SetMonthlyStats stores the monthly statistics for this invoice set.
func (c *Cache) SetMonthlyStats(invoices []models.Invoice, data []models.MonthlyStat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.monthly = entry{timestamp: c.now(), hash: Hash(invoices), set: true}
	c.monthlyData = data
}

// GetCategoryBreakdown returns the cached category breakdown, or nil on a miss.
func (c *Cache) GetCategoryBreakdown(invoices []models.Invoice) []models.CategoryStat {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.category.valid(c.now(), Hash(invoices), c.ttl) {
		return c.categoryData
	}
	return nil
}

// SetCategoryBreakdown stores the category breakdown for this invoice set.
func (c *Cache) SetCategoryBreakdown(invoices []models.Invoice, data []models.CategoryStat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.category = entry{timestamp: c.now(), hash: Hash(invoices), set: true}
	c.categoryData = data
}

// ClearExpired sweeps entries past their TTL. Reads already treat expired
// entries as misses; this drops the data they still reference.
func (c *Cache) ClearExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if c.daily.set && now.Sub(c.daily.timestamp) >= c.ttl {
		c.daily = entry{}
		c.dailyData = nil
	}
	if c.monthly.set && now.Sub(c.monthly.timestamp) >= c.ttl {
		c.monthly = entry{}
		c.monthlyData = nil
	}
	if c.category.set && now.Sub(c.category.timestamp) >= c.ttl {
		c.category = entry{}
		c.categoryData = nil
	}
}

// Clear drops everything regardless of age.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.daily, c.monthly, c.category = entry{}, entry{}, entry{}
	c.dailyData, c.monthlyData, c.categoryData = nil, nil, nil
}

// Hash computes the content hash of an invoice set: invoices are sorted by
// id, concatenated as id-totalAmount-status tuples and folded into a 32-bit
// polynomial rolling hash.
func Hash(invoices []models.Invoice) uint32 {
	ids := make([]int, len(invoices))
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(a, b int) bool {
		return invoices[ids[a]].ID < invoices[ids[b]].ID
	})

	var sb strings.Builder
	for _, i := range ids {
		inv := invoices[i]
		sb.WriteString(inv.ID)
		sb.WriteByte('-')
		sb.WriteString(inv.TotalAmount.String())
		sb.WriteByte('-')
		sb.WriteString(string(inv.Status))
		sb.WriteByte('|')
	}

	var h uint32
	for _, b := range []byte(sb.String()) {
		h = h*31 + uint32(b)
	}
	return h
}
