package stats

import (
	"testing"

	"fashiontally-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Lining", Price: 1500},
		{Name: "Buttons", Price: 300},
	}

	got := ComputeOrderTotals(10000, items, 5000)

	assert.InDelta(t, 11800.0, got.TotalAmount, 1e-9)
	assert.InDelta(t, 6800.0, got.BalanceDue, 1e-9)
}

func TestComputeOrderTotalsOverpaymentGoesNegative(t *testing.T) {
	got := ComputeOrderTotals(1000, nil, 1500)

	assert.InDelta(t, 1000.0, got.TotalAmount, 1e-9)
	assert.InDelta(t, -500.0, got.BalanceDue, 1e-9)
}

func TestOrderDisplayStatus(t *testing.T) {
	assert.Equal(t, "In Progress", OrderDisplayStatus("Active"))
	assert.Equal(t, "Completed", OrderDisplayStatus("Archived"))
	assert.Equal(t, "Pending", OrderDisplayStatus("Draft"))
	assert.Equal(t, "Pending", OrderDisplayStatus(""))
}

func TestAppointmentDisplayStatus(t *testing.T) {
	assert.Equal(t, "Confirmed", AppointmentDisplayStatus("Scheduled"))
	assert.Equal(t, "Completed", AppointmentDisplayStatus("Completed"))
	assert.Equal(t, "Cancelled", AppointmentDisplayStatus("Cancelled"))
	assert.Equal(t, "Pending", AppointmentDisplayStatus("whatever"))
}
