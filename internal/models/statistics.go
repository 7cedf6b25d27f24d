package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is the inclusive [Start, End] span of a set of invoices.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Statistics is the aggregate consumption view over a set of issued
// invoices. It is always derived; the invoice set is the source of truth.
type Statistics struct {
	TotalAmount       decimal.Decimal   `json:"totalAmount"`
	TotalInvoices     int               `json:"totalInvoices"`
	AverageAmount     decimal.Decimal   `json:"averageAmount"`
	DateRange         DateRange         `json:"dateRange"`
	CategoryBreakdown []CategoryStat    `json:"categoryBreakdown"`
	TimeSeriesData    []TimeSeriesPoint `json:"timeSeriesData"`
}

// CategoryStat aggregates item amounts for one category. Percentage is
// relative to the total amount across all categories.
type CategoryStat struct {
	Category   string          `json:"category" csv:"分類"`
	Amount     decimal.Decimal `json:"amount" csv:"金額"`
	Count      int             `json:"count" csv:"筆數"`
	Percentage float64         `json:"percentage" csv:"佔比"`
}

// TimeSeriesPoint is one calendar-day (or month) bucket, sorted ascending.
type TimeSeriesPoint struct {
	Date   string          `json:"date" csv:"日期"`
	Amount decimal.Decimal `json:"amount" csv:"金額"`
	Count  int             `json:"count" csv:"筆數"`
}

// MonthlyStat aggregates one calendar month, with a category breakdown
// restricted to that month's invoices.
type MonthlyStat struct {
	Month             string          `json:"month" csv:"月份"`
	TotalAmount       decimal.Decimal `json:"totalAmount" csv:"總金額"`
	InvoiceCount      int             `json:"invoiceCount" csv:"發票數"`
	AverageAmount     decimal.Decimal `json:"averageAmount" csv:"平均金額"`
	CategoryBreakdown []CategoryStat  `json:"categoryBreakdown" csv:"-"`
}

// MerchantStat aggregates spending at one merchant. Percentage is relative
// to the grand total across all merchants.
type MerchantStat struct {
	MerchantName string          `json:"merchantName" csv:"商店"`
	TotalAmount  decimal.Decimal `json:"totalAmount" csv:"總金額"`
	InvoiceCount int             `json:"invoiceCount" csv:"發票數"`
	Percentage   float64         `json:"percentage" csv:"佔比"`
}

// ItemFrequency counts how often an item name occurs across invoices.
type ItemFrequency struct {
	ItemName    string          `json:"itemName" csv:"品項"`
	Frequency   int             `json:"frequency" csv:"次數"`
	TotalAmount decimal.Decimal `json:"totalAmount" csv:"總金額"`
}

// VoidedStats summarizes voided invoices relative to the full invoice set.
type VoidedStats struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Percentage  float64         `json:"percentage"`
}
