package stats

import "fashiontally-backend/models"

type InvoiceTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
}

// ComputeInvoiceTotals derives the stored money fields of an invoice
// from its line items. Tax applies to the post-discount amount. The
// result is written once with the invoice and never recomputed on
// read, so stored invoices stay historically accurate.
func ComputeInvoiceTotals(items []models.InvoiceItem, discountPercent, taxRatePercent float64) InvoiceTotals {
	var totals InvoiceTotals

	for _, item := range items {
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		totals.Subtotal += float64(qty) * item.Price
	}

	totals.DiscountAmount = totals.Subtotal * discountPercent / 100
	totals.TaxAmount = (totals.Subtotal - totals.DiscountAmount) * taxRatePercent / 100
	totals.Total = totals.Subtotal - totals.DiscountAmount + totals.TaxAmount

	return totals
}
