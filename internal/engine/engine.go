// Package engine reconstructs bank statement transactions from positioned text
// fragments. Table structure is inferred from fragment coordinates alone: the
// booking-date, value-date, credit and debit columns are located by frequency,
// rows are grouped by the top edge of their booking-date anchor, and the result
// is balanced against the opening and closing balances printed on the statement.
//
// An Engine keeps only immutable configuration, so one instance may serve many
// documents concurrently. Each call owns the entities it derives.
package engine

import (
	"fintrack/internal/domain"
)

// Engine reconstructs one document per call.
type Engine struct {
	opts        Options
	categorizer *Categorizer
}

// New creates an engine for the given ordered category rules.
func New(rules domain.CategoryRules, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		opts:        o,
		categorizer: NewCategorizer(rules, o.DefaultCategory),
	}
}

// Options returns the effective configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Categorizer returns the categorizer built from the engine's rules.
func (e *Engine) Categorizer() *Categorizer {
	return e.categorizer
}

// Reconstruct turns the complete fragment set of a document into a balanced
// transaction sequence. A document without row anchors yields an empty statement.
func (e *Engine) Reconstruct(fragments []domain.Fragment) (*domain.Statement, error) {
	stmt := &domain.Statement{Transactions: []domain.Transaction{}}

	balances, anchors := LocateBalances(fragments, e.opts)
	stmt.Anchors = anchors
	if !balances.Start.Valid {
		stmt.Warnings = append(stmt.Warnings, MissingStartWarning())
	}
	stmt.StartBalance = balances.Start
	stmt.EndBalance = balances.End

	layout := LocateColumns(fragments)
	rows := Reconstruct(fragments, layout, e.categorizer, e.opts)

	txs, warnings, err := Reconcile(rows, balances, e.opts)
	if err != nil {
		return nil, err
	}
	stmt.Transactions = append(stmt.Transactions, txs...)
	stmt.Warnings = append(stmt.Warnings, warnings...)
	return stmt, nil
}
