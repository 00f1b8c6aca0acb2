package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain"
)

func TestEngine_Reconstruct_SingleTransaction(t *testing.T) {
	e := New(domain.CategoryRules{{ID: "shopping", Name: "Shopping", Keywords: []string{"amazon"}}})

	fragments := []domain.Fragment{
		frag(1, 40, 760, 120, 770, "Alter Saldo"),
		frag(1, 380, 760, 400, 770, "EUR"),
		frag(1, 420, 760, 500, 770, "+ 1.000,00"),
		frag(1, 50, 700, 90, 710, "01.01.2024"),
		frag(1, 320, 700, 400, 710, "- 123,45"),
		frag(1, 150, 700, 300, 710, "Amazon Marketplace"),
	}

	stmt, err := e.Reconstruct(fragments)
	require.NoError(t, err)
	assert.Empty(t, stmt.Warnings)
	require.Len(t, stmt.Transactions, 1)

	tx := stmt.Transactions[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.True(t, decimal.RequireFromString("-123.45").Equal(tx.Debit.Decimal))
	assert.False(t, tx.Credit.Valid)
	assert.Equal(t, "Shopping", tx.Purpose)
	assert.Equal(t, "-123.45", tx.Amount.StringFixed(2))
	assert.Equal(t, "876.55", tx.Balance.StringFixed(2))
	assert.Equal(t, domain.TransactionTypeDebit, tx.Type())
}

func TestEngine_Reconstruct_ExposesAnchors(t *testing.T) {
	e := New(nil)

	fragments := []domain.Fragment{
		frag(1, 40, 760, 120, 770, "Alter Saldo"),
		frag(1, 380, 760, 400, 770, "EUR"),
		frag(1, 420, 760, 500, 770, "+ 100,00"),
		frag(1, 40, 100, 120, 110, "Neuer Saldo"),
		frag(1, 380, 100, 400, 110, "EUR"),
		frag(1, 420, 100, 500, 110, "+ 10,00"),
		frag(2, 40, 100, 120, 110, "Neuer Saldo"),
		frag(2, 380, 100, 400, 110, "EUR"),
		frag(2, 420, 100, 500, 110, "+ 100,00"),
	}

	stmt, err := e.Reconstruct(fragments)
	require.NoError(t, err)
	require.Len(t, stmt.Anchors, 3)
	assert.Equal(t, domain.BalanceRoleStart, stmt.Anchors[0].Role)
	assert.Equal(t, 2, stmt.Anchors[2].Page)
	assert.True(t, decimal.NewFromInt(10).Equal(stmt.Anchors[1].Value), "replaced anchor is still reported")
	assert.True(t, decimal.NewFromInt(100).Equal(stmt.EndBalance.Decimal))
}

func TestEngine_Reconstruct_MissingStartBalance(t *testing.T) {
	e := New(nil)
	stmt, err := e.Reconstruct([]domain.Fragment{
		frag(1, 50, 700, 90, 710, "01.01.2024"),
		frag(1, 320, 700, 400, 710, "+ 20,00"),
	})
	require.NoError(t, err)
	assert.True(t, stmt.HasWarning(domain.WarningMissingStartBalance))
	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "20.00", stmt.Transactions[0].Balance.StringFixed(2))
	assert.Empty(t, stmt.Transactions[0].Purpose)
}

func TestEngine_Reconstruct_EmptyDocument(t *testing.T) {
	stmt, err := New(nil).Reconstruct([]domain.Fragment{frag(1, 10, 10, 50, 20, "Kontoauszug")})
	require.NoError(t, err)
	assert.NotNil(t, stmt.Transactions)
	assert.Empty(t, stmt.Transactions)
}

func TestEngine_Reconstruct_DateFormatErrorIsFatal(t *testing.T) {
	_, err := New(nil).Reconstruct([]domain.Fragment{
		frag(1, 50, 700, 90, 710, "99.99.2024"),
	})
	var dfe *domain.DateFormatError
	assert.True(t, errors.As(err, &dfe))
}

func TestEngine_Reconstruct_Mismatch(t *testing.T) {
	fragments := []domain.Fragment{
		frag(1, 40, 760, 120, 770, "Alter Saldo"),
		frag(1, 380, 760, 400, 770, "EUR"),
		frag(1, 420, 760, 500, 770, "+ 100,00"),
		frag(1, 50, 700, 90, 710, "01.01.2024"),
		frag(1, 320, 700, 400, 710, "- 10,00"),
		frag(1, 40, 100, 120, 110, "Neuer Saldo"),
		frag(1, 380, 100, 400, 110, "EUR"),
		frag(1, 420, 100, 500, 110, "+ 80,00"),
	}
	stmt, err := New(nil).Reconstruct(fragments)
	require.NoError(t, err)
	assert.True(t, stmt.HasWarning(domain.WarningReconciliationMismatch))
	assert.False(t, stmt.HasWarning(domain.WarningMissingStartBalance))
	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "90.00", stmt.Transactions[0].Balance.StringFixed(2))
}

func TestEngine_Reconstruct_StableDateOrder(t *testing.T) {
	fragments := []domain.Fragment{
		frag(1, 50, 700, 90, 710, "05.01.2024"),
		frag(1, 150, 700, 300, 710, "late"),
		frag(1, 320, 700, 400, 710, "- 1,00"),
		frag(1, 50, 680, 90, 690, "02.01.2024"),
		frag(1, 150, 680, 300, 690, "same day first"),
		frag(1, 320, 680, 400, 690, "- 2,00"),
		frag(2, 50, 700, 90, 710, "02.01.2024"),
		frag(2, 150, 700, 300, 710, "same day second"),
		frag(2, 320, 700, 400, 710, "- 3,00"),
	}
	stmt, err := New(nil).Reconstruct(fragments)
	require.NoError(t, err)
	require.Len(t, stmt.Transactions, 3)
	assert.Equal(t, "same day first", stmt.Transactions[0].Description)
	assert.Equal(t, "same day second", stmt.Transactions[1].Description)
	assert.Equal(t, "late", stmt.Transactions[2].Description)
}

func TestEngine_Reconstruct_FinalBalanceIsStartPlusSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 25; run++ {
		start := decimal.New(rng.Int63n(1_000_000)-500_000, -2)
		fragments := []domain.Fragment{
			frag(1, 40, 780, 120, 790, "Alter Saldo"),
			frag(1, 380, 780, 400, 790, "EUR"),
			frag(1, 420, 780, 500, 790, FormatAmount(start)),
		}
		want := start
		n := 1 + rng.Intn(20)
		for i := 0; i < n; i++ {
			amount := decimal.New(rng.Int63n(200_000)-100_000, -2)
			if amount.IsZero() {
				amount = decimal.New(1, -2)
			}
			want = want.Add(amount)

			y := float64(760 - i*10)
			right := 400.0
			if amount.IsPositive() {
				right = 500
			}
			fragments = append(fragments,
				frag(1, 50, y-8, 90, y, fmt.Sprintf("%02d.01.2024", 1+rng.Intn(28))),
				frag(1, right-60, y-8, right, y, FormatAmount(amount)),
			)
		}

		stmt, err := New(nil).Reconstruct(fragments)
		require.NoError(t, err)
		require.Len(t, stmt.Transactions, n)
		last := stmt.Transactions[n-1]
		assert.Equal(t, want.Round(2).StringFixed(2), last.Balance.StringFixed(2), "run %d", run)
	}
}
