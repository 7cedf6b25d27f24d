package collection

import (
	"testing"

	"hylin/einvoice-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inv(number string) models.Invoice {
	return models.Invoice{InvoiceNumber: number}
}

func TestPutAndGet(t *testing.T) {
	c := New()
	c.Put("a.csv", []models.Invoice{inv("INV1"), inv("INV2")})

	got := c.Get("a.csv")
	require.Len(t, got, 2)
	assert.Equal(t, "INV1", got[0].InvoiceNumber)
	assert.Nil(t, c.Get("unknown.csv"))
}

func TestPutSupersedesPreviousInvoices(t *testing.T) {
	c := New()
	c.Put("a.csv", []models.Invoice{inv("INV1"), inv("INV2")})
	c.Put("a.csv", []models.Invoice{inv("INV3")})

	got := c.Get("a.csv")
	require.Len(t, got, 1)
	assert.Equal(t, "INV3", got[0].InvoiceNumber)
	assert.Equal(t, 1, c.Len())
}

func TestRemove(t *testing.T) {
	c := New()
	c.Put("a.csv", []models.Invoice{inv("INV1")})
	c.Put("b.csv", []models.Invoice{inv("INV2")})

	c.Remove("a.csv")
	assert.Nil(t, c.Get("a.csv"))
	assert.Equal(t, []string{"b.csv"}, c.Files())
	assert.Equal(t, 1, c.Len())
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Put("b.csv", []models.Invoice{inv("INV1")})
	c.Put("a.csv", []models.Invoice{inv("INV2"), inv("INV3")})

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "INV1", all[0].InvoiceNumber)
	assert.Equal(t, "INV2", all[1].InvoiceNumber)

	// Files, by contrast, are sorted.
	assert.Equal(t, []string{"a.csv", "b.csv"}, c.Files())
}
