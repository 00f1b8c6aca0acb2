package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
	"fintrack/internal/engine"
)

// FragmentStatementParser reconstructs statements from positioned text fragments.
type FragmentStatementParser struct {
	extractor FragmentExtractor
	engine    *engine.Engine
}

// NewFragmentStatementParser creates a parser that feeds extracted fragments to e.
func NewFragmentStatementParser(extractor FragmentExtractor, e *engine.Engine) *FragmentStatementParser {
	return &FragmentStatementParser{extractor: extractor, engine: e}
}

// Parse extracts the fragments of path and reconstructs its statement.
func (p *FragmentStatementParser) Parse(ctx context.Context, path string) (*domain.Statement, error) {
	fragments, err := p.extractor.ReadFragments(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not extract fragments: %w", err)
	}
	stmt, err := p.engine.Reconstruct(fragments)
	if err != nil {
		return nil, fmt.Errorf("could not reconstruct transactions: %w", err)
	}
	stmt.Source = path
	return stmt, nil
}

// TabularStatementParser builds the same transaction sequence from tabular exports.
// Such exports carry no declared balances, so balances start at zero.
type TabularStatementParser struct {
	reader TabularReader
	engine *engine.Engine
}

// NewTabularStatementParser creates a parser that categorizes and reconciles rows with e.
func NewTabularStatementParser(reader TabularReader, e *engine.Engine) *TabularStatementParser {
	return &TabularStatementParser{reader: reader, engine: e}
}

// Parse reads the rows of path and reconciles them from a zero opening balance.
func (p *TabularStatementParser) Parse(ctx context.Context, path string) (*domain.Statement, error) {
	rows, err := p.reader.ReadRows(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not read rows: %w", err)
	}

	opts := p.engine.Options()
	transactions := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		amount, ok := engine.ParseLocaleAmount(row.Amount)
		if !ok {
			return nil, fmt.Errorf("line %d: could not parse amount %q", row.Line, row.Amount)
		}
		tx := domain.Transaction{
			Page:        1,
			BookingDate: row.BookingDate,
			Description: row.Description,
			Purpose:     p.engine.Categorizer().Categorize(row.Description),
			Currency:    opts.Currency,
		}
		value := decimal.NullDecimal{Decimal: amount, Valid: true}
		if amount.IsNegative() {
			tx.Debit = value
		} else {
			tx.Credit = value
		}
		transactions = append(transactions, tx)
	}

	reconciled, warnings, err := engine.Reconcile(transactions, engine.Balances{}, opts)
	if err != nil {
		return nil, fmt.Errorf("could not reconcile transactions: %w", err)
	}
	return &domain.Statement{
		Source:       path,
		Transactions: reconciled,
		Warnings:     append([]domain.Warning{engine.MissingStartWarning()}, warnings...),
	}, nil
}
