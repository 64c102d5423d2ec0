package stats

import (
	"testing"
	"time"

	"fashiontally-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var chartNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func txnAt(amount float64, txnType string, at time.Time) models.Transaction {
	return models.Transaction{
		Amount: amount,
		Type:   txnType,
		Model:  gorm.Model{CreatedAt: at},
	}
}

func TestBuildChartSeriesAllEmptySkeleton(t *testing.T) {
	buckets := BuildChartSeries(nil, RangeAll, chartNow)

	require.Len(t, buckets, 12)
	for _, b := range buckets {
		assert.Zero(t, b.Income)
		assert.Zero(t, b.Expenses)
		assert.NotEmpty(t, b.Period)
	}

	// trailing weeks end at now
	assert.Equal(t, "Jun 9 - Jun 15", buckets[11].Period)
	assert.Equal(t, "Mar 24 - Mar 30", buckets[0].Period)
}

func TestBuildChartSeriesBucketCounts(t *testing.T) {
	assert.Len(t, BuildChartSeries(nil, RangeLast30, chartNow), 5)
	assert.Len(t, BuildChartSeries(nil, RangeLast90, chartNow), 13)
}

func TestBuildChartSeriesAggregatesInThousands(t *testing.T) {
	transactions := []models.Transaction{
		txnAt(5000, "Income", chartNow.AddDate(0, 0, -1)),
		txnAt(2500, "Expense", chartNow.AddDate(0, 0, -1)),
		txnAt(900, "Income", chartNow.AddDate(0, 0, -1)), // floors away
	}

	buckets := BuildChartSeries(transactions, RangeAll, chartNow)

	last := buckets[11]
	assert.Equal(t, 5.0, last.Income) // floor(5900/1000)
	assert.Equal(t, 2.0, last.Expenses)

	for _, b := range buckets[:11] {
		assert.Zero(t, b.Income)
		assert.Zero(t, b.Expenses)
	}
}

func TestBuildChartSeriesThisMonth(t *testing.T) {
	buckets := BuildChartSeries(nil, RangeThisMonth, chartNow)

	require.Len(t, buckets, 10) // Jun 6 .. Jun 15
	assert.Equal(t, "Jun 6", buckets[0].Period)
	assert.Equal(t, "Jun 15", buckets[9].Period)
}

func TestBuildChartSeriesThisMonthClipsToMonthStart(t *testing.T) {
	earlyJune := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	buckets := BuildChartSeries(nil, RangeThisMonth, earlyJune)

	require.Len(t, buckets, 5) // Jun 1 .. Jun 5
	assert.Equal(t, "Jun 1", buckets[0].Period)
	assert.Equal(t, "Jun 5", buckets[4].Period)
}

func TestBuildChartSeriesIdempotent(t *testing.T) {
	transactions := []models.Transaction{
		txnAt(12000, "Income", chartNow.AddDate(0, 0, -3)),
	}

	first := BuildChartSeries(transactions, RangeLast30, chartNow)
	second := BuildChartSeries(transactions, RangeLast30, chartNow)
	assert.Equal(t, first, second)
}

func TestResolveTransactionDatePrecedence(t *testing.T) {
	created := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	legacy := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	withCreated := models.Transaction{Model: gorm.Model{CreatedAt: created, UpdatedAt: updated}, Date: &legacy}
	assert.Equal(t, created, ResolveTransactionDate(withCreated, chartNow))

	withLegacy := models.Transaction{Model: gorm.Model{UpdatedAt: updated}, Date: &legacy}
	assert.Equal(t, legacy, ResolveTransactionDate(withLegacy, chartNow))

	withUpdated := models.Transaction{Model: gorm.Model{UpdatedAt: updated}}
	assert.Equal(t, updated, ResolveTransactionDate(withUpdated, chartNow))

	bare := models.Transaction{}
	assert.Equal(t, chartNow, ResolveTransactionDate(bare, chartNow))
}
