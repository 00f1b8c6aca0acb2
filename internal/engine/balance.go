package engine

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
)

// Balances are the declared opening and closing balances of a statement.
type Balances struct {
	Start decimal.NullDecimal
	End   decimal.NullDecimal
}

// LocateBalances finds every currency label, classifies it by the labels on the
// same text line and reads the amount that shares its bounding box edges.
func LocateBalances(fragments []domain.Fragment, opts Options) (Balances, []domain.BalanceAnchor) {
	var (
		balances Balances
		anchors  []domain.BalanceAnchor
	)
	startLabel := strings.ToLower(opts.StartLabel)
	endLabel := strings.ToLower(opts.EndLabel)

	for _, anchor := range fragments {
		if anchor.Text != opts.Currency {
			continue
		}

		var isStart, isEnd bool
		for _, f := range fragments {
			if f.Page != anchor.Page || math.Abs(f.Box.Y0-anchor.Box.Y0) > opts.YTolerance {
				continue
			}
			lower := strings.ToLower(f.Text)
			isStart = isStart || strings.Contains(lower, startLabel)
			isEnd = isEnd || strings.Contains(lower, endLabel)
		}
		if !isStart && !isEnd {
			continue
		}

		value, ok := alignedAmount(fragments, anchor)
		if !ok {
			continue
		}

		role := domain.BalanceRoleEnd
		target := &balances.End
		if isStart {
			role = domain.BalanceRoleStart
			target = &balances.Start
		}
		anchors = append(anchors, domain.BalanceAnchor{Page: anchor.Page, Role: role, Value: value})
		if target.Valid && opts.BalancePolicy == FirstWriteWins {
			continue
		}
		*target = decimal.NullDecimal{Decimal: value, Valid: true}
	}
	return balances, anchors
}

// alignedAmount returns the first amount on the anchor's page with identical y0 and y1.
func alignedAmount(fragments []domain.Fragment, anchor domain.Fragment) (decimal.Decimal, bool) {
	for _, f := range fragments {
		if f.Page != anchor.Page || f.Box.Y0 != anchor.Box.Y0 || f.Box.Y1 != anchor.Box.Y1 {
			continue
		}
		if v, ok := ParseAmount(f.Text); ok {
			return v, true
		}
	}
	return decimal.Zero, false
}
