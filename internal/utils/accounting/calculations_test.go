package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func txn(id int64, amount string, category domain.Category) domain.Transaction {
	return domain.Transaction{
		ID:       id,
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Status:   domain.Paid,
	}
}

func TestTotalsByCategory_NoFloatDrift(t *testing.T) {
	// 0.1 summed ten times drifts with float64; decimal must land exactly on 1.
	var txns []domain.Transaction
	for i := 0; i < 10; i++ {
		txns = append(txns, txn(int64(i), "0.1", domain.Revenue))
	}
	txns = append(txns, txn(99, "0.3", domain.Expense))

	totals := TotalsByCategory(txns)

	assert.Equal(t, "1", totals.Get(domain.Revenue).String())
	assert.Equal(t, "0.3", totals.Get(domain.Expense).String())
}

func TestTotalsByCategory_Empty(t *testing.T) {
	totals := TotalsByCategory(nil)
	assert.True(t, totals.Get(domain.Revenue).IsZero())
	assert.True(t, totals.Get(domain.Expense).IsZero())
}
