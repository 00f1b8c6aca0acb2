package gateway

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS statements (
	id           TEXT PRIMARY KEY,
	path         TEXT NOT NULL UNIQUE,
	checksum     TEXT NOT NULL,
	transactions INTEGER NOT NULL,
	imported_at  TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS transactions (
	id           TEXT PRIMARY KEY,
	statement_id TEXT NOT NULL REFERENCES statements(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	page         INTEGER NOT NULL,
	date         TEXT NOT NULL,
	purpose      TEXT NOT NULL,
	description  TEXT NOT NULL,
	debit        TEXT,
	credit       TEXT,
	currency     TEXT NOT NULL,
	amount       TEXT NOT NULL,
	balance      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_statement ON transactions(statement_id, position);
`

// SQLiteLedgerStore remembers imported statements and their transactions.
type SQLiteLedgerStore struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLiteLedgerStore opens (and initializes) the ledger database.
func OpenSQLiteLedgerStore(dbPath string) (*SQLiteLedgerStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteLedgerStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteLedgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsProcessed reports whether a statement with the same path or content was imported.
func (s *SQLiteLedgerStore) IsProcessed(ctx context.Context, path string) (bool, error) {
	sum, err := checksum(path)
	if err != nil {
		return false, err
	}
	var count int
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM statements WHERE path = ? OR checksum = ?`, path, sum,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query statements: %w", err)
	}
	return count > 0, nil
}

// SaveStatement stores the statement and its transactions in one transaction
// and returns the new statement id.
func (s *SQLiteLedgerStore) SaveStatement(ctx context.Context, path string, stmt *domain.Statement) (string, error) {
	sum, err := checksum(path)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO statements (id, path, checksum, transactions, imported_at) VALUES (?, ?, ?, ?, ?)`,
		id, path, sum, len(stmt.Transactions), time.Now().UTC(),
	)
	if err != nil {
		if s.isDuplicate(ctx, path) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrAlreadyProcessed)
		}
		return "", fmt.Errorf("failed to insert statement: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, statement_id, position, page, date, purpose, description,
			debit, credit, currency, amount, balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close()

	for i, t := range stmt.Transactions {
		_, err := insert.ExecContext(ctx,
			uuid.NewString(), id, i, t.Page, t.Date.Format("2006-01-02"), t.Purpose, t.Description,
			nullString(t.Debit), nullString(t.Credit), t.Currency, t.Amount.String(), t.Balance.String(),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// ListTransactions returns every stored transaction in import order.
func (s *SQLiteLedgerStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.page, t.date, t.purpose, t.description, t.debit, t.credit, t.currency, t.amount, t.balance
		FROM transactions t JOIN statements s ON s.id = t.statement_id
		ORDER BY s.rowid, t.position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		var (
			t                     domain.Transaction
			date, amount, balance string
			debit, credit         sql.NullString
		)
		if err := rows.Scan(&t.Page, &date, &t.Purpose, &t.Description, &debit, &credit, &t.Currency, &amount, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if t.Date, err = time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
		}
		if t.Debit, err = parseNull(debit); err != nil {
			return nil, err
		}
		if t.Credit, err = parseNull(credit); err != nil {
			return nil, err
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
		}
		if t.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("invalid stored balance %q: %w", balance, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteLedgerStore) isDuplicate(ctx context.Context, path string) bool {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM statements WHERE path = ?`, path).Scan(&count)
	return err == nil && count > 0
}

func checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func nullString(d decimal.NullDecimal) sql.NullString {
	if !d.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Decimal.String(), Valid: true}
}

func parseNull(s sql.NullString) (decimal.NullDecimal, error) {
	if !s.Valid {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid stored amount %q: %w", s.String, err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

