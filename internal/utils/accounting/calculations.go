package accounting

import (
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalsByCategory sums amounts per category. Records with an unknown category
// are skipped; callers validate records before they reach the store.
func TotalsByCategory(transactions []domain.Transaction) domain.CategoryTotals {
	totals := domain.CategoryTotals{
		domain.Revenue: decimal.Zero,
		domain.Expense: decimal.Zero,
	}
	for _, txn := range transactions {
		if !txn.Category.IsValid() {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}
