package stats

import (
	"testing"
	"time"

	"fashiontally-backend/models"

	"github.com/stretchr/testify/assert"
)

var dashNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestComputeDashboardStats(t *testing.T) {
	transactions := []models.Transaction{
		txnAt(10000, "Income", dashNow.AddDate(0, 0, -2)),
		txnAt(4000, "Income", dashNow.AddDate(0, 0, -5)),
		txnAt(3000, "Expense", dashNow.AddDate(0, 0, -1)),
		// previous month
		txnAt(7000, "Income", dashNow.AddDate(0, -1, 0)),
		txnAt(1000, "Expense", dashNow.AddDate(0, -1, 0)),
		// outside both windows
		txnAt(99999, "Income", dashNow.AddDate(0, -4, 0)),
	}

	got := ComputeDashboardStats(transactions, dashNow)

	assert.InDelta(t, 14000.0, got.TotalIncome, 1e-9)
	assert.InDelta(t, 3000.0, got.TotalExpenses, 1e-9)
	assert.InDelta(t, 11000.0, got.NetProfit, 1e-9)
	assert.InDelta(t, 100.0, got.IncomeGrowth, 1e-9)  // (14000-7000)/7000
	assert.InDelta(t, 200.0, got.ExpenseGrowth, 1e-9) // (3000-1000)/1000
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	got := ComputeDashboardStats(nil, dashNow)

	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.TotalExpenses)
	assert.Zero(t, got.NetProfit)
	assert.Zero(t, got.IncomeGrowth)
	assert.Zero(t, got.ExpenseGrowth)
}

func TestComputeDashboardStatsGrowthFromZeroBase(t *testing.T) {
	transactions := []models.Transaction{
		txnAt(5000, "Income", dashNow),
	}

	got := ComputeDashboardStats(transactions, dashNow)
	assert.InDelta(t, 100.0, got.IncomeGrowth, 1e-9)
}

func TestComputeDashboardStatsNegativeAmountContributesZero(t *testing.T) {
	transactions := []models.Transaction{
		txnAt(-500, "Income", dashNow),
		txnAt(1000, "Income", dashNow),
	}

	got := ComputeDashboardStats(transactions, dashNow)
	assert.InDelta(t, 1000.0, got.TotalIncome, 1e-9)
}
