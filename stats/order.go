package stats

import "fashiontally-backend/models"

type OrderTotals struct {
	TotalAmount float64 `json:"totalAmount"`
	BalanceDue  float64 `json:"balanceDue"`
}

// ComputeOrderTotals derives an order's total price and outstanding
// balance. BalanceDue goes negative on overpayment and is not clamped.
func ComputeOrderTotals(basePrice float64, additionalItems []models.OrderItem, depositPaid float64) OrderTotals {
	total := basePrice
	for _, item := range additionalItems {
		total += item.Price
	}
	return OrderTotals{
		TotalAmount: total,
		BalanceDue:  total - depositPaid,
	}
}

// OrderDisplayStatus maps a stored order status to its UI label.
func OrderDisplayStatus(status string) string {
	switch status {
	case "Active":
		return "In Progress"
	case "Archived":
		return "Completed"
	default:
		return "Pending"
	}
}

// AppointmentDisplayStatus maps a stored appointment status to its UI
// label.
func AppointmentDisplayStatus(status string) string {
	switch status {
	case "Scheduled":
		return "Confirmed"
	case "Completed":
		return "Completed"
	case "Cancelled":
		return "Cancelled"
	default:
		return "Pending"
	}
}
