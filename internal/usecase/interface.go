package usecase

import (
	"context"

	"fintrack/internal/domain"
)

// StatementParser turns one statement file into a reconciled transaction sequence.
// Implementations differ only in the kind of file they read.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type StatementParser interface {
	Parse(ctx context.Context, path string) (*domain.Statement, error)
}

// FragmentExtractor produces the positioned text fragments of a document.
type FragmentExtractor interface {
	ReadFragments(ctx context.Context, path string) ([]domain.Fragment, error)
}

// TabularReader produces the rows of a tabular statement export.
type TabularReader interface {
	ReadRows(ctx context.Context, path string) ([]domain.StatementRow, error)
}

// LedgerStore remembers which statements were imported and their transactions.
type LedgerStore interface {
	IsProcessed(ctx context.Context, path string) (bool, error)
	SaveStatement(ctx context.Context, path string, stmt *domain.Statement) (string, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
