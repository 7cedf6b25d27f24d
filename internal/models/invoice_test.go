package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInvoiceStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected InvoiceStatus
	}{
		{"empty defaults to issued", "", StatusIssued},
		{"issued marker", "開立", StatusIssued},
		{"chinese voided", "作廢", StatusVoided},
		{"voided with noise", "已作廢", StatusVoided},
		{"english void", "void", StatusVoided},
		{"uppercase void", "VOIDED", StatusVoided},
		{"cancelled", "cancelled", StatusVoided},
		{"unrelated text", "normal", StatusIssued},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseInvoiceStatus(tc.raw))
		})
	}
}

func TestIsIssued(t *testing.T) {
	assert.True(t, Invoice{Status: StatusIssued}.IsIssued())
	assert.False(t, Invoice{Status: StatusVoided}.IsIssued())
}
