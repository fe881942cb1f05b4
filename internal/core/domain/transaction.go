package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Category is the direction of a money movement. Amounts are always positive,
// the category says whether they add to or subtract from the balance.
type Category string

const (
	Revenue Category = "Revenue"
	Expense Category = "Expense"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case Revenue, Expense:
		return true
	}
	return false
}

// Status is informational only and never used in aggregation.
type Status string

const (
	Paid    Status = "Paid"
	Pending Status = "Pending"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case Paid, Pending:
		return true
	}
	return false
}

// Transaction is a single seeded money-movement record. Records are immutable.
type Transaction struct {
	ID          int64           `json:"id"` // Externally assigned, unique
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"` // Non-negative magnitude
	Category    Category        `json:"category"`
	Status      Status          `json:"status"`
	UserID      string          `json:"user_id"`
	UserProfile string          `json:"user_profile"`
}

// Validate checks the record against the closed enumerations and the amount sign.
func (t Transaction) Validate() error {
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: transaction %d has unknown category %q", apperrors.ErrDataIntegrity, t.ID, t.Category)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: transaction %d has unknown status %q", apperrors.ErrDataIntegrity, t.ID, t.Status)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction %d has negative amount %s", apperrors.ErrDataIntegrity, t.ID, t.Amount.String())
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction %d has no date", apperrors.ErrDataIntegrity, t.ID)
	}
	return nil
}
