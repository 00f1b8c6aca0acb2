package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
)

// Reconcile returns a dated, date-sorted and balanced copy of transactions.
// A booking date that does not parse is fatal. A closing balance that differs
// from the computed one by more than the tolerance yields a warning.
func Reconcile(transactions []domain.Transaction, balances Balances, opts Options) ([]domain.Transaction, []domain.Warning, error) {
	out := make([]domain.Transaction, len(transactions))
	for i, tx := range transactions {
		date, err := time.Parse(opts.DateLayout, tx.BookingDate)
		if err != nil {
			return nil, nil, &domain.DateFormatError{Page: tx.Page, Text: tx.BookingDate, Err: err}
		}
		tx.Date = date
		tx.Amount = tx.Credit.Decimal.Add(tx.Debit.Decimal).Round(2)
		out[i] = tx
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	running := balances.Start.Decimal
	for i := range out {
		running = running.Add(out[i].Amount)
		out[i].Balance = running.Round(2)
	}

	var warnings []domain.Warning
	if balances.End.Valid {
		computed := running.Round(2)
		if computed.Sub(balances.End.Decimal).Abs().GreaterThan(opts.BalanceTolerance) {
			warnings = append(warnings, domain.Warning{
				Code: domain.WarningReconciliationMismatch,
				Message: fmt.Sprintf("calculated end balance (%s) differs from actual end balance (%s)",
					computed.StringFixed(2), balances.End.Decimal.StringFixed(2)),
			})
		}
	}
	return out, warnings, nil
}

// MissingStartWarning is raised when no opening balance could be located.
func MissingStartWarning() domain.Warning {
	return domain.Warning{
		Code:    domain.WarningMissingStartBalance,
		Message: "no start balance found, assuming " + decimal.Zero.StringFixed(2),
	}
}
