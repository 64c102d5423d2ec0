package stats

import (
	"testing"

	"fashiontally-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeInvoiceTotals(t *testing.T) {
	items := []models.InvoiceItem{
		{Quantity: 2, Price: 1000},
		{Quantity: 1, Price: 500},
	}

	got := ComputeInvoiceTotals(items, 10, 7)

	assert.InDelta(t, 2500.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 250.0, got.DiscountAmount, 1e-9)
	// tax applies to the post-discount amount: 2250 * 7%
	assert.InDelta(t, 157.5, got.TaxAmount, 1e-9)
	assert.InDelta(t, 2407.5, got.Total, 1e-9)
}

func TestComputeInvoiceTotalsNoItems(t *testing.T) {
	got := ComputeInvoiceTotals(nil, 10, 7)

	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.DiscountAmount)
	assert.Zero(t, got.TaxAmount)
	assert.Zero(t, got.Total)
}

func TestComputeInvoiceTotalsNegativeQuantityContributesZero(t *testing.T) {
	items := []models.InvoiceItem{
		{Quantity: -3, Price: 100},
		{Quantity: 1, Price: 200},
	}

	got := ComputeInvoiceTotals(items, 0, 0)
	assert.InDelta(t, 200.0, got.Subtotal, 1e-9)
}

func TestComputeInvoiceTotalsIdempotent(t *testing.T) {
	items := []models.InvoiceItem{{Quantity: 3, Price: 750}}

	first := ComputeInvoiceTotals(items, 5, 12)
	second := ComputeInvoiceTotals(items, 5, 12)
	assert.Equal(t, first, second)
}
