package domain

import "github.com/shopspring/decimal"

// WarningCode identifies a non-fatal condition found while processing a statement.
type WarningCode string

const (
	WarningMissingStartBalance    WarningCode = "MissingStartBalance"
	WarningReconciliationMismatch WarningCode = "ReconciliationMismatch"
)

// Warning is a recovered problem surfaced to the caller alongside the result.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// Statement is the reconstructed content of one document.
type Statement struct {
	Source       string              `json:"source"`
	Transactions []Transaction       `json:"transactions"`
	Warnings     []Warning           `json:"warnings"`
	StartBalance decimal.NullDecimal `json:"start_balance"`
	EndBalance   decimal.NullDecimal `json:"end_balance"`
	// Anchors lists every declared balance found, in document order, including
	// those a later or earlier anchor of the same role replaced.
	Anchors []BalanceAnchor `json:"anchors,omitempty"`
}

// HasWarning reports whether a warning with the given code was raised.
func (s *Statement) HasWarning(code WarningCode) bool {
	for _, w := range s.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// FileResult records the outcome of importing one file.
type FileResult struct {
	Path         string    `json:"path"`
	StatementID  string    `json:"statement_id,omitempty"`
	Transactions int       `json:"transactions"`
	Warnings     []Warning `json:"warnings,omitempty"`
	Skipped      bool      `json:"skipped,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// Ledger accumulates transactions across imported files.
// It is owned by the caller and threaded through each import explicitly.
type Ledger struct {
	Transactions []Transaction `json:"-"`
	Files        []FileResult  `json:"files"`
}

// Summary provides high-level statistics of an import run.
type Summary struct {
	FilesProcessed    int    `json:"files_processed"`
	FilesSkipped      int    `json:"files_skipped"`
	FilesFailed       int    `json:"files_failed"`
	TotalTransactions int    `json:"total_transactions"`
	TotalWarnings     int    `json:"total_warnings"`
	OutputPath        string `json:"output_path,omitempty"`
}

// Summarize builds the run summary for the ledger.
func (l Ledger) Summarize() Summary {
	s := Summary{TotalTransactions: len(l.Transactions)}
	for _, f := range l.Files {
		switch {
		case f.Skipped:
			s.FilesSkipped++
		case f.Error != "":
			s.FilesFailed++
		default:
			s.FilesProcessed++
		}
		s.TotalWarnings += len(f.Warnings)
	}
	return s
}

// StatementRow is one record of a tabular statement export, still in its textual form.
type StatementRow struct {
	Line        int    `json:"line"`
	BookingDate string `json:"booking_date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}
