package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fintrack/internal/domain"
	"fintrack/internal/logger"
)

// ImportUseCase orchestrates parsing of many statement files into one ledger.
type ImportUseCase struct {
	parsers map[string]StatementParser
	store   LedgerStore
}

// NewImportUseCase creates a new instance of the usecase. parsers is keyed by
// lower-case file extension without the dot. store may be nil, in which case
// every file is parsed and nothing is persisted.
func NewImportUseCase(parsers map[string]StatementParser, store LedgerStore) *ImportUseCase {
	return &ImportUseCase{parsers: parsers, store: store}
}

// LoadLedger returns a ledger holding every transaction imported by earlier
// runs. Without a store the ledger is empty.
func (uc *ImportUseCase) LoadLedger(ctx context.Context) (domain.Ledger, error) {
	if uc.store == nil {
		return domain.Ledger{}, nil
	}
	txs, err := uc.store.ListTransactions(ctx)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("could not load ledger: %w", err)
	}
	log := logger.FromContext(ctx)
	log.Debug().Int("transactions", len(txs)).Msg("loaded stored transactions")
	return domain.Ledger{Transactions: txs}, nil
}

// Import parses each path and appends its transactions to acc. A failing file
// is recorded in the ledger and does not stop the others; only cancellation
// aborts the run.
func (uc *ImportUseCase) Import(ctx context.Context, paths []string, acc domain.Ledger) (domain.Ledger, error) {
	log := logger.FromContext(ctx)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return acc, err
		}

		result, txs, err := uc.importFile(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return acc, err
			}
			log.Error().Err(err).Str("file", path).Msg("error processing file, skipping")
			result.Error = err.Error()
		}
		for _, w := range result.Warnings {
			log.Warn().Str("file", path).Str("code", string(w.Code)).Msg(w.Message)
		}
		if result.Skipped {
			log.Info().Str("file", path).Msg("already imported, skipping")
		}

		acc.Transactions = append(acc.Transactions, txs...)
		acc.Files = append(acc.Files, result)
	}
	return acc, nil
}

func (uc *ImportUseCase) importFile(ctx context.Context, path string) (domain.FileResult, []domain.Transaction, error) {
	result := domain.FileResult{Path: path}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	parser, ok := uc.parsers[ext]
	if !ok {
		return result, nil, fmt.Errorf("%s: %w", ext, domain.ErrUnsupportedFileType)
	}

	if uc.store != nil {
		processed, err := uc.store.IsProcessed(ctx, path)
		if err != nil {
			return result, nil, fmt.Errorf("could not check ledger: %w", err)
		}
		if processed {
			result.Skipped = true
			return result, nil, nil
		}
	}

	stmt, err := parser.Parse(ctx, path)
	if err != nil {
		return result, nil, err
	}
	if len(stmt.Transactions) == 0 {
		log := logger.FromContext(ctx)
		log.Info().Str("file", path).Msg(domain.ErrEmptyDocument.Error())
	}

	if uc.store != nil {
		id, err := uc.store.SaveStatement(ctx, path, stmt)
		if err != nil {
			return result, nil, fmt.Errorf("could not save statement: %w", err)
		}
		result.StatementID = id
	}
	result.Warnings = stmt.Warnings
	result.Transactions = len(stmt.Transactions)
	return result, stmt.Transactions, nil
}
