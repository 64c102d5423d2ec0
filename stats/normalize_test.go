package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var normNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestNormalizeTransaction(t *testing.T) {
	raw := map[string]interface{}{
		"description": "Fabric purchase",
		"amount":      2500.0,
		"type":        "Expense",
		"category":    "Materials",
		"date":        "2024-03-10",
	}

	got := NormalizeTransaction(raw, normNow)

	assert.Equal(t, "Fabric purchase", got.Description)
	assert.InDelta(t, 2500.0, got.Amount, 1e-9)
	assert.Equal(t, "Expense", got.Type)
	assert.Equal(t, "Materials", got.Category)
	require.NotNil(t, got.Date)
	assert.Equal(t, 2024, got.Date.Year())
	assert.Equal(t, time.March, got.Date.Month())
	assert.Equal(t, 10, got.Date.Day())
}

func TestNormalizeTransactionDefaults(t *testing.T) {
	got := NormalizeTransaction(map[string]interface{}{}, normNow)

	assert.Equal(t, "Imported transaction", got.Description)
	assert.Zero(t, got.Amount)
	assert.Equal(t, "Expense", got.Type)
	assert.Equal(t, "General", got.Category)
	require.NotNil(t, got.Date)
	assert.Equal(t, normNow, *got.Date)
}

func TestNormalizeTransactionMalformedFields(t *testing.T) {
	raw := map[string]interface{}{
		"amount": "not a number",
		"type":   "Revenue", // unknown type
		"date":   "last tuesday",
	}

	got := NormalizeTransaction(raw, normNow)

	assert.Zero(t, got.Amount)
	assert.Equal(t, "Expense", got.Type)
	assert.Equal(t, normNow, *got.Date)
}

func TestNormalizeTransactionStringAmount(t *testing.T) {
	got := NormalizeTransaction(map[string]interface{}{"amount": " 1250.50 "}, normNow)
	assert.InDelta(t, 1250.50, got.Amount, 1e-9)
}

func TestNormalizeTransactionIncomeType(t *testing.T) {
	got := NormalizeTransaction(map[string]interface{}{"type": "Income"}, normNow)
	assert.Equal(t, "Income", got.Type)
}
