package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the nature of the transaction (DEBIT or CREDIT).
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// DefaultCurrency is the only currency the statement layout carries.
const DefaultCurrency = "EUR"

// BalanceRole tells whether a balance anchor declares the opening or the closing balance.
type BalanceRole string

const (
	BalanceRoleStart BalanceRole = "start"
	BalanceRoleEnd   BalanceRole = "end"
)

// BalanceAnchor is a declared balance found next to a currency label.
type BalanceAnchor struct {
	Page  int             `json:"page"`
	Role  BalanceRole     `json:"role"`
	Value decimal.Decimal `json:"value"`
}

// Transaction is one reconstructed statement row.
// Debit carries its negative sign. At most one of Debit and Credit is valid
// unless the row repeated amounts of both signs.
type Transaction struct {
	Page        int                 `json:"page"`
	Date        time.Time           `json:"date"`
	Purpose     string              `json:"purpose"`
	Description string              `json:"description"`
	Debit       decimal.NullDecimal `json:"debit"`
	Credit      decimal.NullDecimal `json:"credit"`
	Currency    string              `json:"currency"`
	Amount      decimal.Decimal     `json:"amount"`
	Balance     decimal.Decimal     `json:"balance"`

	// BookingDate is the raw date text of the row anchor.
	BookingDate string `json:"-"`
}

// Type reports DEBIT for negative amounts and CREDIT otherwise.
func (t Transaction) Type() TransactionType {
	if t.Amount.IsNegative() {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}

// Year returns the booking year.
func (t Transaction) Year() int {
	return t.Date.Year()
}

// Month returns the booking month, 1 to 12.
func (t Transaction) Month() int {
	return int(t.Date.Month())
}

// Quarter returns the booking quarter, 1 to 4.
func (t Transaction) Quarter() int {
	return (t.Month()-1)/3 + 1
}
