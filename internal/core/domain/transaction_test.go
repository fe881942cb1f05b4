package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() domain.Transaction {
	return domain.Transaction{
		ID:          1,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(100),
		Category:    domain.Revenue,
		Status:      domain.Paid,
		UserID:      "user_001",
		UserProfile: "https://example.com/u/1.png",
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
	}{
		{name: "valid revenue", mutate: func(*domain.Transaction) {}},
		{name: "valid pending expense", mutate: func(tx *domain.Transaction) {
			tx.Category = domain.Expense
			tx.Status = domain.Pending
		}},
		{name: "zero amount is allowed", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.Zero }},
		{name: "unknown category", mutate: func(tx *domain.Transaction) { tx.Category = "Refund" }, wantErr: true},
		{name: "lower case category", mutate: func(tx *domain.Transaction) { tx.Category = "revenue" }, wantErr: true},
		{name: "unknown status", mutate: func(tx *domain.Transaction) { tx.Status = "Failed" }, wantErr: true},
		{name: "negative amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "missing date", mutate: func(tx *domain.Transaction) { tx.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewSummary(t *testing.T) {
	s := domain.NewSummary(decimal.RequireFromString("100.10"), decimal.RequireFromString("40.20"))

	assert.True(t, s.Revenue.Equal(decimal.RequireFromString("100.10")))
	assert.True(t, s.Expenses.Equal(decimal.RequireFromString("40.20")))
	assert.True(t, s.Balance.Equal(decimal.RequireFromString("59.90")))
	assert.True(t, s.Savings.Equal(s.Balance))
}

func TestNewSummary_ExpensesExceedRevenue(t *testing.T) {
	s := domain.NewSummary(decimal.NewFromInt(10), decimal.NewFromInt(25))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(-15)))
	assert.True(t, s.Savings.Equal(s.Balance))
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "mid year",
			year:     2024,
			month:    time.March,
			wantFrom: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			year:     2024,
			month:    time.December,
			wantFrom: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap february",
			year:     2024,
			month:    time.February,
			wantFrom: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.MonthRange(tt.year, tt.month)
			assert.Equal(t, tt.wantFrom, r.From)
			assert.Equal(t, tt.wantTo, r.To)
		})
	}
}

func TestDateRange_ContainsIsHalfOpen(t *testing.T) {
	r := domain.YearRange(2024)

	assert.True(t, r.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestTransactionFilter_Matches(t *testing.T) {
	tx := validTransaction()
	tx.Status = domain.Paid
	tx.UserID = "User_042"

	jan := domain.MonthRange(2024, time.January)
	feb := domain.MonthRange(2024, time.February)

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		want   bool
	}{
		{name: "empty filter", filter: domain.TransactionFilter{}, want: true},
		{name: "status case-insensitive", filter: domain.TransactionFilter{Search: "paid"}, want: true},
		{name: "category substring", filter: domain.TransactionFilter{Search: "VEN"}, want: true},
		{name: "user id substring", filter: domain.TransactionFilter{Search: "user_04"}, want: true},
		{name: "no field matches", filter: domain.TransactionFilter{Search: "pending"}, want: false},
		{name: "profile is not searched", filter: domain.TransactionFilter{Search: "example.com"}, want: false},
		{name: "inside range", filter: domain.TransactionFilter{Range: &jan}, want: true},
		{name: "outside range", filter: domain.TransactionFilter{Range: &feb}, want: false},
		{name: "range and search both match", filter: domain.TransactionFilter{Range: &jan, Search: "rev"}, want: true},
		{name: "range matches search does not", filter: domain.TransactionFilter{Range: &jan, Search: "exp"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tx))
		})
	}
}

func TestCategoryTotals_GetMissingIsZero(t *testing.T) {
	totals := domain.CategoryTotals{domain.Revenue: decimal.NewFromInt(5)}
	assert.True(t, totals.Get(domain.Expense).IsZero())
	assert.True(t, totals.Get(domain.Revenue).Equal(decimal.NewFromInt(5)))
}

func TestParseDate(t *testing.T) {
	day, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), day)

	ts, err := domain.ParseDate(" 2024-02-29T01:00:00+05:00 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 28, 20, 0, 0, 0, time.UTC), ts)

	for _, bad := range []string{"", "2024-13-01", "29/02/2024", "yesterday"} {
		_, err := domain.ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
