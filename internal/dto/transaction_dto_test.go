package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestMonthlyParams_ToMonthlyQuery(t *testing.T) {
	assert.Equal(t, domain.MonthlyQuery{Year: 2024}, MonthlyParams{Year: intPtr(2024)}.ToMonthlyQuery())
	assert.Equal(t, domain.MonthlyQuery{Year: 2024, Month: 12}, MonthlyParams{Year: intPtr(2024), Month: intPtr(12)}.ToMonthlyQuery())
	assert.Equal(t, domain.MonthlyQuery{}, MonthlyParams{}.ToMonthlyQuery())
}

func TestSearchTransactionsParams_ToSearchQuery(t *testing.T) {
	params := SearchTransactionsParams{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31T10:00:00Z",
		Search:    "paid",
		Page:      2,
		Limit:     5,
	}

	q, err := params.ToSearchQuery()
	require.NoError(t, err)

	require.NotNil(t, q.StartDate)
	require.NotNil(t, q.EndDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *q.StartDate)
	assert.Equal(t, time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC), *q.EndDate)
	assert.Equal(t, "paid", q.Search)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.Limit)
}

func TestSearchTransactionsParams_NoDates(t *testing.T) {
	q, err := SearchTransactionsParams{Page: 1, Limit: 10}.ToSearchQuery()
	require.NoError(t, err)
	assert.Nil(t, q.StartDate)
	assert.Nil(t, q.EndDate)
}

func TestSearchTransactionsParams_InvalidDate(t *testing.T) {
	_, err := SearchTransactionsParams{EndDate: "31-01-2024", Page: 1, Limit: 10}.ToSearchQuery()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "endDate")
}

func TestSearchTransactionsParams_InvalidUTF8Search(t *testing.T) {
	_, err := SearchTransactionsParams{Search: "paid\xff\xfe", Page: 1, Limit: 10}.ToSearchQuery()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "search")

	q, err := SearchTransactionsParams{Search: "café", Page: 1, Limit: 10}.ToSearchQuery()
	require.NoError(t, err)
	assert.Equal(t, "café", q.Search)
}

func TestToMonthlyResponse_YearOnlyInFullYearForm(t *testing.T) {
	full := ToMonthlyResponse(&domain.MonthlyReport{Year: 2024, Labels: []string{"January"}})
	require.NotNil(t, full.Year)
	assert.Equal(t, 2024, *full.Year)

	single := ToMonthlyResponse(&domain.MonthlyReport{Labels: []string{"3-2024"}})
	assert.Nil(t, single.Year)

	raw, err := json.Marshal(single)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"year"`)
}

func TestTransactionResponse_JSONFieldNames(t *testing.T) {
	resp := ToTransactionResponse(domain.Transaction{
		ID:          7,
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("19.99"),
		Category:    domain.Expense,
		Status:      domain.Pending,
		UserID:      "user_007",
		UserProfile: "https://example.com/7.png",
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"id", "date", "amount", "category", "status", "user_id", "user_profile"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "2024-05-01T00:00:00Z", fields["date"])
}

func TestToSearchTransactionsResponse_EmptyPageIsArray(t *testing.T) {
	resp := ToSearchTransactionsResponse(&domain.TransactionPage{CurrentPage: 3, TotalPages: 2, TotalTransactions: 15})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactions": [], "totalPages": 2, "currentPage": 3, "totalTransactions": 15}`, string(raw))
}
