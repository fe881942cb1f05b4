package repositories

import (
	"context"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
)

// TransactionReader defines the read-side queries the dashboard engine needs from the record store.
type TransactionReader interface {
	// SumByCategory sums amounts per category, optionally restricted to a window.
	// A nil window aggregates the whole collection.
	SumByCategory(ctx context.Context, window *domain.DateRange) (domain.CategoryTotals, error)

	// SumByMonthAndCategory groups records in the window by (calendar month, category) and sums each group.
	// Row order is unspecified.
	SumByMonthAndCategory(ctx context.Context, window domain.DateRange) ([]domain.MonthlyCategoryTotal, error)

	// ListRecentTransactions returns up to limit records ordered by date desc, id desc.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// CountTransactions counts records matching the filter.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error)

	// FindTransactions returns one window of matching records ordered by date desc, id desc.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.Pagination) ([]domain.Transaction, error)
}

// TransactionWriter defines the bootstrap write path. Records are never updated or deleted.
type TransactionWriter interface {
	// InsertTransactionsIfEmpty bulk inserts txns only when the store holds no records,
	// returning how many rows were written. Implementations must make the emptiness
	// check and the insert safe against concurrent callers.
	InsertTransactionsIfEmpty(ctx context.Context, txns []domain.Transaction) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
