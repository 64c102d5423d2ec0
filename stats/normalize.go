package stats

import (
	"strconv"
	"strings"
	"time"

	"fashiontally-backend/models"
)

// ResolveTransactionDate picks the date a transaction counts under.
// Precedence: CreatedAt, then the legacy Date field, then UpdatedAt,
// then now. Historical records carried their date under different
// fields at different times; every aggregation must walk the same
// chain or charts drift on old data.
func ResolveTransactionDate(t models.Transaction, now time.Time) time.Time {
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt
	}
	if t.Date != nil && !t.Date.IsZero() {
		return *t.Date
	}
	if !t.UpdatedAt.IsZero() {
		return t.UpdatedAt
	}
	return now
}

// dateLayouts covers the formats seen in manually entered records.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// NormalizeTransaction maps a loosely-typed raw record into a strict
// Transaction with defined defaults: non-numeric amounts become 0,
// unknown types become Expense, unparseable dates fall back to now.
// Used by the bulk import path, which accepts records exported from
// older versions of the books.
func NormalizeTransaction(raw map[string]interface{}, now time.Time) models.Transaction {
	t := models.Transaction{
		Description: str(raw["description"]),
		Amount:      num(raw["amount"]),
		Category:    str(raw["category"]),
	}
	if t.Description == "" {
		t.Description = "Imported transaction"
	}
	if t.Category == "" {
		t.Category = "General"
	}

	if str(raw["type"]) == "Income" {
		t.Type = "Income"
	} else {
		t.Type = "Expense"
	}

	date := parseDate(raw["date"], now)
	t.Date = &date

	return t
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

// num mirrors the Number(x) || 0 treatment of historical records: a
// malformed amount contributes zero instead of aborting the import.
func num(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

func parseDate(v interface{}, now time.Time) time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return now
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return now
}
