// Package models defines the domain model shared by the parser, the
// statistics engine and the export layer.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle status of an invoice.
type InvoiceStatus string

const (
	// StatusIssued marks a normally issued invoice.
	StatusIssued InvoiceStatus = "issued"
	// StatusVoided marks a cancelled invoice. Voided invoices are excluded
	// from consumption statistics but counted in void-rate metrics.
	StatusVoided InvoiceStatus = "voided"
)

// voidedMarkers are the substrings recognized as a voided status, matched
// case-insensitively. 作廢 is the term used by the Ministry of Finance
// e-invoice platform.
var voidedMarkers = []string{"void", "cancel", "作廢"}

// ParseInvoiceStatus maps the raw status field of a header row to an
// InvoiceStatus. An empty field defaults to issued.
func ParseInvoiceStatus(raw string) InvoiceStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusIssued
	}
	for _, marker := range voidedMarkers {
		if strings.Contains(s, marker) {
			return StatusVoided
		}
	}
	return StatusIssued
}

// Invoice is a fully reconciled e-invoice: one header row joined with all
// of its detail rows. Invoices are immutable after reconciliation; a
// reprocessed file replaces its invoices wholesale.
type Invoice struct {
	ID            string          `json:"id" csv:"-"`
	CarrierType   string          `json:"carrierType" csv:"載具類別"`
	CarrierNumber string          `json:"carrierNumber" csv:"載具號碼"`
	InvoiceDate   time.Time       `json:"invoiceDate" csv:"-"`
	MerchantID    string          `json:"merchantId" csv:"商店統編"`
	MerchantName  string          `json:"merchantName" csv:"商店店名"`
	InvoiceNumber string          `json:"invoiceNumber" csv:"發票號碼"`
	TotalAmount   decimal.Decimal `json:"totalAmount" csv:"總金額"`
	Status        InvoiceStatus   `json:"status" csv:"狀態"`
	Items         []InvoiceItem   `json:"items" csv:"-"`
}

// IsIssued reports whether the invoice counts toward consumption statistics.
func (inv Invoice) IsIssued() bool {
	return inv.Status == StatusIssued
}

// InvoiceItem is a single line item belonging to an invoice, joined by
// invoice number.
type InvoiceItem struct {
	ID            string          `json:"id" csv:"-"`
	InvoiceNumber string          `json:"invoiceNumber" csv:"發票號碼"`
	ItemName      string          `json:"itemName" csv:"品項名稱"`
	Amount        decimal.Decimal `json:"amount" csv:"小計"`
	Category      string          `json:"category" csv:"分類"`
}
