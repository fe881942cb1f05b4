// Package seed provides the initial transaction set loaded into an empty store.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

//go:embed transactions.json
var embedded []byte

// record is the on-disk shape, identical to the API's transaction JSON.
type record struct {
	ID          int64           `json:"id"`
	Date        flexibleTime    `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	UserID      string          `json:"user_id"`
	UserProfile string          `json:"user_profile"`
}

// flexibleTime accepts RFC3339 timestamps or plain YYYY-MM-DD days.
type flexibleTime struct {
	time.Time
}

func (f *flexibleTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

// Embedded returns the transaction set compiled into the binary.
func Embedded() ([]domain.Transaction, error) {
	return Load(bytes.NewReader(embedded))
}

// LoadFile reads a seed set from a JSON file on disk.
func LoadFile(path string) ([]domain.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a JSON array of transactions. Unknown fields are rejected.
func Load(r io.Reader) ([]domain.Transaction, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode seed data: %v", apperrors.ErrDataIntegrity, err)
	}

	txns := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		txns = append(txns, domain.Transaction{
			ID:          rec.ID,
			Date:        rec.Date.Time,
			Amount:      rec.Amount,
			Category:    domain.Category(rec.Category),
			Status:      domain.Status(rec.Status),
			UserID:      rec.UserID,
			UserProfile: rec.UserProfile,
		})
	}
	return txns, nil
}
