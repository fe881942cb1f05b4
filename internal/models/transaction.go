package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionPK int64           `json:"-"`          // Store primary key, never exposed
	ExternalID    int64           `json:"id"`         // Seeded identifier (UNIQUE)
	TxnDate       time.Time       `json:"date"`       // Not Null
	Amount        decimal.Decimal `json:"amount"`     // NUMERIC(20,4), >= 0
	Category      string          `json:"category"`   // 'Revenue' | 'Expense' (CHECK)
	Status        string          `json:"status"`     // 'Paid' | 'Pending' (CHECK)
	UserID        string          `json:"user_id"`    // Not Null
	UserProfile   string          `json:"user_profile"`
	CreatedAt     time.Time       `json:"-"`
}
