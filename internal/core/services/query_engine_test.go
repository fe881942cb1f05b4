package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/services"
	"github.com/SscSPs/ledger_dashboard_app/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerFixture spans two years with a same-day tie and a December record.
func ledgerFixture() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, Date: utcDay(2024, time.January, 3), Amount: dec("1200.50"), Category: domain.Revenue, Status: domain.Paid, UserID: "user_001", UserProfile: "https://example.com/u1.png"},
		{ID: 2, Date: utcDay(2024, time.January, 15), Amount: dec("300.25"), Category: domain.Expense, Status: domain.Paid, UserID: "user_002"},
		{ID: 3, Date: utcDay(2024, time.February, 1), Amount: dec("89.99"), Category: domain.Expense, Status: domain.Pending, UserID: "user_003"},
		{ID: 4, Date: utcDay(2024, time.March, 20), Amount: dec("560"), Category: domain.Revenue, Status: domain.Pending, UserID: "user_001"},
		{ID: 5, Date: utcDay(2024, time.March, 20), Amount: dec("10"), Category: domain.Expense, Status: domain.Paid, UserID: "user_004"},
		{ID: 6, Date: time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC), Amount: dec("45.45"), Category: domain.Expense, Status: domain.Paid, UserID: "user_002"},
		{ID: 7, Date: utcDay(2025, time.January, 1), Amount: dec("999"), Category: domain.Revenue, Status: domain.Paid, UserID: "user_005"},
	}
}

func newEngine(txns []domain.Transaction) (*memory.Store, context.Context) {
	return memory.NewWithTransactions(txns), context.Background()
}

func sumAmounts(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// netBalance adds revenue and subtracts expense record by record.
func netBalance(txns []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		if t.Category == domain.Expense {
			balance = balance.Sub(t.Amount)
			continue
		}
		balance = balance.Add(t.Amount)
	}
	return balance
}

func TestEngine_SummaryMatchesRawTotals(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.Revenue.Equal(dec("2759.50")), summary.Revenue.String())
	assert.True(t, summary.Expenses.Equal(dec("445.69")), summary.Expenses.String())
	assert.True(t, summary.Balance.Equal(dec("2313.81")), summary.Balance.String())
	assert.True(t, summary.Savings.Equal(summary.Balance))

	assert.True(t, summary.Balance.Equal(netBalance(ledgerFixture())))
}

func TestEngine_YearSeriesAddsUpToYearTotals(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	report, err := svc.GetMonthly(ctx, domain.MonthlyQuery{Year: 2024})
	require.NoError(t, err)

	require.Len(t, report.Revenue, 12)
	require.Len(t, report.Expenses, 12)
	assert.True(t, sumAmounts(report.Revenue).Equal(dec("1760.50")))
	assert.True(t, sumAmounts(report.Expenses).Equal(dec("445.69")))
	assert.True(t, report.Expenses[11].Equal(dec("45.45")), "late December record belongs to December")
	assert.True(t, report.Revenue[0].Equal(dec("1200.50")), "2025 record must not leak into January 2024")
}

func TestEngine_SingleMonthIsSubsetOfYear(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	year, err := svc.GetMonthly(ctx, domain.MonthlyQuery{Year: 2024})
	require.NoError(t, err)

	for m := 1; m <= 12; m++ {
		single, err := svc.GetMonthly(ctx, domain.MonthlyQuery{Year: 2024, Month: m})
		require.NoError(t, err)
		assert.True(t, single.Revenue[0].Equal(year.Revenue[m-1]), "revenue month %d", m)
		assert.True(t, single.Expenses[0].Equal(year.Expenses[m-1]), "expenses month %d", m)
	}
}

func TestEngine_RecentBreaksTiesById(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	recent, err := svc.GetRecent(ctx)
	require.NoError(t, err)

	ids := make([]int64, 0, len(recent))
	for _, txn := range recent {
		ids = append(ids, txn.ID)
	}
	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids)
}

func TestEngine_SearchPagesPartitionMatches(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	first, err := svc.Search(ctx, domain.SearchQuery{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.TotalTransactions)
	assert.Equal(t, 3, first.TotalPages)

	seen := map[int64]bool{}
	for page := 1; page <= first.TotalPages; page++ {
		res, err := svc.Search(ctx, domain.SearchQuery{Page: page, Limit: 3})
		require.NoError(t, err)
		for _, txn := range res.Transactions {
			assert.False(t, seen[txn.ID], "id %d returned twice", txn.ID)
			seen[txn.ID] = true
		}
	}
	assert.Len(t, seen, 7)

	beyond, err := svc.Search(ctx, domain.SearchQuery{Page: 10, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Transactions)
	assert.NotNil(t, beyond.Transactions)
	assert.Equal(t, 3, beyond.TotalPages)
	assert.Equal(t, 10, beyond.CurrentPage)
}

func TestEngine_SearchFarPastLastPageIsEmpty(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	res, err := svc.Search(ctx, domain.SearchQuery{Page: 100000000000000000, Limit: 100})
	require.NoError(t, err)

	assert.Empty(t, res.Transactions)
	assert.NotNil(t, res.Transactions)
	assert.Equal(t, int64(7), res.TotalTransactions)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 100000000000000000, res.CurrentPage)
}

func TestEngine_SearchDateRangeIsInclusiveOfEndDay(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	start := utcDay(2024, time.December, 1)
	end := utcDay(2024, time.December, 31)
	res, err := svc.Search(ctx, domain.SearchQuery{StartDate: &start, EndDate: &end, Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, int64(6), res.Transactions[0].ID)
}

func TestEngine_SearchTextMatchesAnyField(t *testing.T) {
	store, ctx := newEngine(ledgerFixture())
	svc := services.NewTransactionQueryService(store)

	res, err := svc.Search(ctx, domain.SearchQuery{Search: "PENDING", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalTransactions)

	res, err = svc.Search(ctx, domain.SearchQuery{Search: "user_002", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.TotalTransactions)

	res, err = svc.Search(ctx, domain.SearchQuery{Search: "nothing-matches", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, res.TotalTransactions)
	assert.Zero(t, res.TotalPages)
}
