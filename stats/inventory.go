package stats

import "fashiontally-backend/models"

const (
	StockInStock    = "In Stock"
	StockLowStock   = "Low Stock"
	StockOutOfStock = "Out of Stock"
)

// LowStockAlertThreshold feeds the dashboard alert badge only. It is
// intentionally separate from the per-item ReorderPoint that drives the
// status badge: the two rules diverge and unifying them would change
// historical badge counts. Flagged with product before touching either.
const LowStockAlertThreshold = 3

// ClassifyStock derives an item's stock status from its quantity and
// reorder point. Persisted on every write, trusted on read.
func ClassifyStock(quantity, reorderPoint int) string {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= reorderPoint:
		return StockLowStock
	default:
		return StockInStock
	}
}

// LowStockAlertCount counts items at or below the fixed alert
// threshold, excluding items already out of stock.
func LowStockAlertCount(items []models.InventoryItem) int {
	count := 0
	for _, item := range items {
		if item.Quantity > 0 && item.Quantity <= LowStockAlertThreshold {
			count++
		}
	}
	return count
}
