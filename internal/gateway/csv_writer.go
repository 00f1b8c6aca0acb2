package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"fintrack/internal/domain"
)

var transactionHeader = []string{
	"page", "purpose", "description", "debit", "credit", "currency",
	"date", "year", "month", "quarter", "amount", "balance",
}

// CSVTransactionWriter saves ledgers as comma separated UTF-8 files.
type CSVTransactionWriter struct{}

// NewCSVTransactionWriter creates a new writer instance.
func NewCSVTransactionWriter() *CSVTransactionWriter {
	return &CSVTransactionWriter{}
}

// WriteTransactions writes the transactions to path, creating its directory.
func (w *CSVTransactionWriter) WriteTransactions(path string, transactions []domain.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(transactionHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			strconv.Itoa(tx.Page),
			tx.Purpose,
			tx.Description,
			nullable(tx.Debit),
			nullable(tx.Credit),
			tx.Currency,
			tx.Date.Format("2006-01-02"),
			strconv.Itoa(tx.Year()),
			strconv.Itoa(tx.Month()),
			strconv.Itoa(tx.Quarter()),
			tx.Amount.StringFixed(2),
			tx.Balance.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}

func nullable(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
