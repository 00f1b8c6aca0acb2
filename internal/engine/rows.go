package engine

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
)

// Reconstruct groups fragments into rows keyed by a booking-date anchor and
// assigns each row's fields. Transactions come back in page, then anchor order,
// without dates, amounts or balances; Reconcile fills those in.
func Reconstruct(fragments []domain.Fragment, layout domain.ColumnLayout, categorizer *Categorizer, opts Options) []domain.Transaction {
	if !layout.HasDates {
		return nil
	}

	var transactions []domain.Transaction
	for _, page := range pagesOf(fragments) {
		for i, anchor := range fragments {
			if anchor.Page != page || anchor.Box.X0 != layout.BookingDateX || !isDate(anchor.Text) {
				continue
			}
			row := rowBuilder{
				tx: domain.Transaction{
					Page:        page,
					Currency:    opts.Currency,
					BookingDate: strings.TrimSpace(strings.ReplaceAll(anchor.Text, "\n", "")),
				},
				layout:      layout,
				categorizer: categorizer,
				opts:        opts,
			}
			for j, f := range fragments {
				if j == i || f.Page != page || f.Box.Y1 != anchor.Box.Y1 {
					continue
				}
				row.add(f)
			}
			transactions = append(transactions, row.tx)
		}
	}
	return transactions
}

type rowBuilder struct {
	tx          domain.Transaction
	hasPurpose  bool
	layout      domain.ColumnLayout
	categorizer *Categorizer
	opts        Options
}

func (r *rowBuilder) add(f domain.Fragment) {
	if f.Box.X0 == r.layout.ValutaDateX {
		return
	}

	if sign, value, ok := matchAmount(f.Text); ok && r.inAmountColumn(f.Box.X1) {
		target := &r.tx.Debit
		if sign == "+" {
			target = &r.tx.Credit
		}
		if target.Valid && r.opts.RowPolicy == FirstWriteWins {
			return
		}
		*target = decimal.NullDecimal{Decimal: value, Valid: true}
		return
	}

	if r.hasPurpose && r.opts.RowPolicy == FirstWriteWins {
		return
	}
	r.hasPurpose = true
	r.tx.Description = f.Text
	r.tx.Purpose = r.categorizer.Categorize(f.Text)
}

func (r *rowBuilder) inAmountColumn(x1 float64) bool {
	near := func(column float64) bool {
		diff := x1 - column
		if r.opts.AmountMatch == AmountMatchAbsolute {
			diff = math.Abs(diff)
		}
		return diff < r.opts.XTolerance
	}
	return (r.layout.HasCredit && near(r.layout.CreditRightEdgeX)) ||
		(r.layout.HasDebit && near(r.layout.DebitRightEdgeX))
}

// pagesOf lists page numbers in order of first appearance.
func pagesOf(fragments []domain.Fragment) []int {
	seen := make(map[int]bool)
	var pages []int
	for _, f := range fragments {
		if !seen[f.Page] {
			seen[f.Page] = true
			pages = append(pages, f.Page)
		}
	}
	return pages
}
