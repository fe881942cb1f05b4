package services

import (
	"context"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
)

// TransactionQuerySvc answers the four dashboard questions. All methods are read-only.
type TransactionQuerySvc interface {
	// GetSummary computes all-time revenue, expenses and balance.
	GetSummary(ctx context.Context) (*domain.Summary, error)

	// GetMonthly builds a monthly series for a year, or a single entry for one month of it.
	GetMonthly(ctx context.Context, query domain.MonthlyQuery) (*domain.MonthlyReport, error)

	// GetRecent returns the most recent records, newest first.
	GetRecent(ctx context.Context) ([]domain.Transaction, error)

	// Search filters, sorts and paginates records.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.TransactionPage, error)
}

// SeedSvc loads the initial record set into an empty store.
type SeedSvc interface {
	// SeedIfEmpty inserts txns when the store is empty and returns the number of records written.
	SeedIfEmpty(ctx context.Context, txns []domain.Transaction) (int64, error)
}
