package stats

import (
	"fmt"
	"math"
	"time"

	"fashiontally-backend/models"
	"fashiontally-backend/utils"
)

const (
	RangeThisMonth = "thisMonth"
	RangeLast30    = "last30"
	RangeLast90    = "last90"
	RangeAll       = "all"
)

type ChartBucket struct {
	Period   string  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// BuildChartSeries buckets transactions into the income/expense series
// behind the finance chart. thisMonth yields one bucket per calendar
// day over the last up-to-10 days of the current month; last30 and
// last90 yield trailing 7-day buckets counted back from now; all is a
// fixed 12 trailing weeks. Amounts are floor-divided by 1000 since the
// chart renders thousands. The full bucket skeleton comes back even
// with no data, so the chart always shows a zero baseline over real
// date labels.
func BuildChartSeries(transactions []models.Transaction, rangeMode string, now time.Time) []ChartBucket {
	switch rangeMode {
	case RangeThisMonth:
		return buildDailyBuckets(transactions, now)
	case RangeLast30:
		return buildWeeklyBuckets(transactions, now, weekCount(30))
	case RangeLast90:
		return buildWeeklyBuckets(transactions, now, weekCount(90))
	default:
		return buildWeeklyBuckets(transactions, now, 12)
	}
}

func weekCount(days int) int {
	return int(math.Ceil(float64(days) / 7))
}

func buildDailyBuckets(transactions []models.Transaction, now time.Time) []ChartBucket {
	startDay := now.Day() - 9
	if startDay < 1 {
		startDay = 1
	}

	buckets := make([]ChartBucket, 0, now.Day()-startDay+1)
	for day := startDay; day <= now.Day(); day++ {
		start := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
		buckets = append(buckets, aggregateBucket(transactions, now, start, start, start.Format("Jan 2")))
	}
	return buckets
}

func buildWeeklyBuckets(transactions []models.Transaction, now time.Time, count int) []ChartBucket {
	today := utils.BeginningOfDay(now)

	buckets := make([]ChartBucket, 0, count)
	for i := count - 1; i >= 0; i-- {
		end := today.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -6)
		label := fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
		buckets = append(buckets, aggregateBucket(transactions, now, start, end, label))
	}
	return buckets
}

// aggregateBucket sums transactions whose resolved date falls within
// [start, end] by calendar day, inclusive on both sides.
func aggregateBucket(transactions []models.Transaction, now, start, end time.Time, label string) ChartBucket {
	bucket := ChartBucket{Period: label}

	lower := utils.BeginningOfDay(start)
	upper := utils.BeginningOfDay(end).AddDate(0, 0, 1)

	var income, expenses float64
	for _, t := range transactions {
		date := ResolveTransactionDate(t, now)
		if date.Before(lower) || !date.Before(upper) {
			continue
		}
		amount := t.Amount
		if amount < 0 {
			amount = 0
		}
		if t.IsIncome() {
			income += amount
		} else {
			expenses += amount
		}
	}

	bucket.Income = math.Floor(income / 1000)
	bucket.Expenses = math.Floor(expenses / 1000)
	return bucket
}
