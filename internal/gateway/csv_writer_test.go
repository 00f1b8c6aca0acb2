package gateway

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			Page:        1,
			Date:        time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			Purpose:     "Shopping",
			Description: "Amazon, Marketplace",
			Debit:       decimal.NullDecimal{Decimal: decimal.RequireFromString("-123.45"), Valid: true},
			Currency:    "EUR",
			Amount:      decimal.RequireFromString("-123.45"),
			Balance:     decimal.RequireFromString("876.55"),
		},
		{
			Page:     2,
			Date:     time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			Purpose:  "Personal",
			Credit:   decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
			Currency: "EUR",
			Amount:   decimal.NewFromInt(10),
			Balance:  decimal.RequireFromString("886.55"),
		},
	}
}

func TestCSVTransactionWriter_WriteTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	err := NewCSVTransactionWriter().WriteTransactions(path, sampleTransactions())
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, transactionHeader, records[0])
	assert.Equal(t, []string{"1", "Shopping", "Amazon, Marketplace", "-123.45", "", "EUR", "2024-05-03", "2024", "5", "2", "-123.45", "876.55"}, records[1])
	assert.Equal(t, []string{"2", "Personal", "", "", "10.00", "EUR", "2024-11-30", "2024", "11", "4", "10.00", "886.55"}, records[2])
}
