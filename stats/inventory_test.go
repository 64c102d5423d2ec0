package stats

import (
	"testing"

	"fashiontally-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStockBoundaries(t *testing.T) {
	assert.Equal(t, StockOutOfStock, ClassifyStock(0, 5))
	assert.Equal(t, StockOutOfStock, ClassifyStock(-2, 5))
	assert.Equal(t, StockLowStock, ClassifyStock(1, 5))
	assert.Equal(t, StockLowStock, ClassifyStock(5, 5))
	assert.Equal(t, StockInStock, ClassifyStock(6, 5))
}

func TestClassifyStockZeroReorderPoint(t *testing.T) {
	assert.Equal(t, StockInStock, ClassifyStock(1, 0))
	assert.Equal(t, StockOutOfStock, ClassifyStock(0, 0))
}

// The alert badge counts against the fixed threshold, not the per-item
// reorder point, so an item can be Low Stock by status yet absent from
// the alert count.
func TestLowStockAlertCountUsesFixedThreshold(t *testing.T) {
	items := []models.InventoryItem{
		{Quantity: 0, ReorderPoint: 5},  // out of stock, not alerted
		{Quantity: 2, ReorderPoint: 5},  // alerted
		{Quantity: 3, ReorderPoint: 5},  // alerted, at threshold
		{Quantity: 4, ReorderPoint: 5},  // low by reorder point, not alerted
		{Quantity: 10, ReorderPoint: 5}, // in stock
	}

	assert.Equal(t, 2, LowStockAlertCount(items))
}
