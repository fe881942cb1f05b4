package domain

import (
	"github.com/shopspring/decimal"
)

// MonthNames are the full-year labels, January first.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Summary holds the all-time totals.
// Savings is currently the same figure as Balance and is kept for API compatibility.
type Summary struct {
	Balance  decimal.Decimal `json:"Balance"`
	Revenue  decimal.Decimal `json:"Revenue"`
	Expenses decimal.Decimal `json:"Expenses"`
	Savings  decimal.Decimal `json:"Savings"`
}

// NewSummary derives the balance figures from category totals.
func NewSummary(revenue, expenses decimal.Decimal) Summary {
	balance := revenue.Sub(expenses)
	return Summary{
		Balance:  balance,
		Revenue:  revenue,
		Expenses: expenses,
		Savings:  balance,
	}
}

// CategoryTotals maps a category to the summed amount of its records.
type CategoryTotals map[Category]decimal.Decimal

// Get returns the total for c, zero when absent.
func (t CategoryTotals) Get(c Category) decimal.Decimal {
	if v, ok := t[c]; ok {
		return v
	}
	return decimal.Zero
}

// MonthlyCategoryTotal is one row of the (month, category) grouped sum.
type MonthlyCategoryTotal struct {
	Month    int // 1-12
	Category Category
	Total    decimal.Decimal
}

// MonthlyReport is either a 12 entry series for a year or a single entry series
// for one month. Year is 0 for the single month form.
type MonthlyReport struct {
	Year     int
	Labels   []string
	Revenue  []decimal.Decimal
	Expenses []decimal.Decimal
}

// TransactionPage is one window of a filtered listing.
type TransactionPage struct {
	Transactions      []Transaction
	TotalPages        int
	CurrentPage       int
	TotalTransactions int64
}
