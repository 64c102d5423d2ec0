package stats

import (
	"time"

	"fashiontally-backend/models"
)

type DashboardStats struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`

	// Growth figures compare against the previous calendar month and
	// are display-grade estimates, not audited numbers.
	IncomeGrowth  float64 `json:"incomeGrowth"`
	ExpenseGrowth float64 `json:"expenseGrowth"`
}

// ComputeDashboardStats sums income and expenses for the calendar
// month containing now, with growth percentages against the previous
// month. Transactions resolve their date through the same fallback
// chain the chart uses.
func ComputeDashboardStats(transactions []models.Transaction, now time.Time) DashboardStats {
	var stats DashboardStats
	var prevIncome, prevExpenses float64

	prevMonth := now.AddDate(0, -1, 0)

	for _, t := range transactions {
		date := ResolveTransactionDate(t, now)
		amount := t.Amount
		if amount < 0 {
			amount = 0
		}

		switch {
		case date.Year() == now.Year() && date.Month() == now.Month():
			if t.IsIncome() {
				stats.TotalIncome += amount
			} else {
				stats.TotalExpenses += amount
			}
		case date.Year() == prevMonth.Year() && date.Month() == prevMonth.Month():
			if t.IsIncome() {
				prevIncome += amount
			} else {
				prevExpenses += amount
			}
		}
	}

	stats.NetProfit = stats.TotalIncome - stats.TotalExpenses
	stats.IncomeGrowth = growthPercentage(stats.TotalIncome, prevIncome)
	stats.ExpenseGrowth = growthPercentage(stats.TotalExpenses, prevExpenses)

	return stats
}

func growthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
