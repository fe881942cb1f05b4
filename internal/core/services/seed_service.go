package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/services"
)

// seedStore is the slice of the repository the seeder needs.
type seedStore interface {
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	portsrepo.TransactionWriter
}

type seedService struct {
	BaseService
	store seedStore
}

// NewSeedService creates the startup seeder.
func NewSeedService(store seedStore) portssvc.SeedSvc {
	return &seedService{store: store}
}

var _ portssvc.SeedSvc = (*seedService)(nil)

// SeedIfEmpty validates txns and loads them when the store holds no records.
// The count probe is only a fast path; the store's guarded insert decides.
func (s *seedService) SeedIfEmpty(ctx context.Context, txns []domain.Transaction) (int64, error) {
	count, err := s.store.CountTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to count existing transactions before seeding")
		return 0, fmt.Errorf("failed to probe record store: %w", err)
	}
	if count > 0 {
		s.LogInfo(ctx, "Record store already populated, skipping seed", slog.Int64("existing", count))
		return 0, nil
	}

	seen := make(map[int64]struct{}, len(txns))
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			s.LogError(ctx, err, "Refusing to seed invalid transaction", slog.Int64("id", t.ID))
			return 0, err
		}
		if _, dup := seen[t.ID]; dup {
			s.LogWarn(ctx, "Duplicate transaction id in seed set", slog.Int64("id", t.ID))
		}
		seen[t.ID] = struct{}{}
	}

	s.LogInfo(ctx, "No data found. Loading initial transaction data...", slog.Int("records", len(txns)))
	inserted, err := s.store.InsertTransactionsIfEmpty(ctx, txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert seed transactions")
		return 0, fmt.Errorf("failed to seed transactions: %w", err)
	}

	s.LogInfo(ctx, "Initial data loaded.", slog.Int64("inserted", inserted))
	return inserted, nil
}
