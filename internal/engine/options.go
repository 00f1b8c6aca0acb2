package engine

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
)

// DuplicatePolicy decides which value is kept when a row or document carries
// several candidates for the same field.
type DuplicatePolicy string

const (
	LastWriteWins  DuplicatePolicy = "last-write-wins"
	FirstWriteWins DuplicatePolicy = "first-write-wins"
)

// AmountMatch selects how an amount's right edge is compared with a column edge.
type AmountMatch string

const (
	// AmountMatchOneSided accepts x1 - column < tolerance. Any fragment left of
	// the column passes, which is how the statements were parsed historically.
	AmountMatchOneSided AmountMatch = "one-sided"
	// AmountMatchAbsolute accepts |x1 - column| < tolerance.
	AmountMatchAbsolute AmountMatch = "absolute"
)

const (
	DefaultBalanceTolerance = "5.00"
	DefaultYTolerance       = 20.0
	DefaultXTolerance       = 10.0
	DefaultStartLabel       = "Alter Saldo"
	DefaultEndLabel         = "Neuer Saldo"
	DefaultDateLayout       = "02.01.2006"
)

// Options tunes the reconstruction engine.
type Options struct {
	BalanceTolerance decimal.Decimal
	YTolerance       float64
	XTolerance       float64
	Currency         string
	StartLabel       string
	EndLabel         string
	DateLayout       string
	DefaultCategory  string
	BalancePolicy    DuplicatePolicy
	RowPolicy        DuplicatePolicy
	AmountMatch      AmountMatch
}

// DefaultOptions returns the settings of the supported statement layout.
func DefaultOptions() Options {
	return Options{
		BalanceTolerance: decimal.RequireFromString(DefaultBalanceTolerance),
		YTolerance:       DefaultYTolerance,
		XTolerance:       DefaultXTolerance,
		Currency:         domain.DefaultCurrency,
		StartLabel:       DefaultStartLabel,
		EndLabel:         DefaultEndLabel,
		DateLayout:       DefaultDateLayout,
		DefaultCategory:  domain.DefaultCategory,
		BalancePolicy:    LastWriteWins,
		RowPolicy:        LastWriteWins,
		AmountMatch:      AmountMatchOneSided,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithBalanceTolerance sets the largest accepted gap between computed and declared end balance.
func WithBalanceTolerance(tol decimal.Decimal) Option {
	return func(o *Options) { o.BalanceTolerance = tol }
}

// WithYTolerance sets the vertical distance within which a balance label belongs to an anchor.
func WithYTolerance(tol float64) Option {
	return func(o *Options) { o.YTolerance = tol }
}

// WithXTolerance sets how close an amount must end to a column edge.
func WithXTolerance(tol float64) Option {
	return func(o *Options) { o.XTolerance = tol }
}

// WithCurrency sets the currency code that marks balance anchors and is stamped on transactions.
func WithCurrency(code string) Option {
	return func(o *Options) { o.Currency = code }
}

// WithBalanceLabels sets the phrases that mark opening and closing balances.
func WithBalanceLabels(start, end string) Option {
	return func(o *Options) {
		o.StartLabel = start
		o.EndLabel = end
	}
}

// WithDefaultCategory sets the purpose used when no category rule matches.
func WithDefaultCategory(name string) Option {
	return func(o *Options) { o.DefaultCategory = name }
}

// WithDuplicatePolicy applies the same policy to balance anchors and row fields.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) {
		o.BalancePolicy = p
		o.RowPolicy = p
	}
}

// WithAmountMatch selects how amount right edges are compared with column edges.
func WithAmountMatch(m AmountMatch) Option {
	return func(o *Options) { o.AmountMatch = m }
}
