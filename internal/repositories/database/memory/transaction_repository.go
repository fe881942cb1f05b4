// Package memory is an in-process record store used for local runs
// (STORE_DRIVER=memory) and for exercising the query engine in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_dashboard_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Store keeps records sorted by date desc, id desc so listings are a slice window.
type Store struct {
	mu    sync.RWMutex
	items []domain.Transaction
	ids   map[int64]struct{}
	err   error
}

// New returns an empty store.
func New() *Store {
	return &Store{ids: map[int64]struct{}{}}
}

// NewWithTransactions returns a store pre-loaded with txns; duplicate ids keep the first occurrence.
func NewWithTransactions(txns []domain.Transaction) *Store {
	s := New()
	s.insertLocked(txns)
	return s
}

// FailWith makes every subsequent call return err; nil clears it.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

var _ portsrepo.TransactionRepositoryFacade = (*Store)(nil)

// SumByCategory sums amounts per category, optionally within a window.
func (s *Store) SumByCategory(ctx context.Context, window *domain.DateRange) (domain.CategoryTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	matched := s.items
	if window != nil {
		matched = s.filterLocked(domain.TransactionFilter{Range: window})
	}
	return accounting.TotalsByCategory(matched), nil
}

// SumByMonthAndCategory groups the window by (UTC calendar month, category).
func (s *Store) SumByMonthAndCategory(ctx context.Context, window domain.DateRange) ([]domain.MonthlyCategoryTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	type key struct {
		month    int
		category domain.Category
	}
	groups := map[key]decimal.Decimal{}
	for _, t := range s.filterLocked(domain.TransactionFilter{Range: &window}) {
		k := key{month: int(t.Date.UTC().Month()), category: t.Category}
		groups[k] = groups[k].Add(t.Amount)
	}

	result := make([]domain.MonthlyCategoryTotal, 0, len(groups))
	for k, total := range groups {
		result = append(result, domain.MonthlyCategoryTotal{Month: k.month, Category: k.category, Total: total})
	}
	return result, nil
}

// ListRecentTransactions returns up to limit records, newest first.
func (s *Store) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return window(s.items, 0, limit), nil
}

// CountTransactions counts records matching the filter.
func (s *Store) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	return int64(len(s.filterLocked(filter))), nil
}

// FindTransactions returns one page of matching records, newest first.
func (s *Store) FindTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.Pagination) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return window(s.filterLocked(filter), page.Offset, page.Limit), nil
}

// InsertTransactionsIfEmpty inserts txns only when the store is empty.
func (s *Store) InsertTransactionsIfEmpty(ctx context.Context, txns []domain.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	if len(s.items) > 0 {
		return 0, nil
	}
	return s.insertLocked(txns), nil
}

func (s *Store) check(ctx context.Context) error {
	if s.err != nil {
		return s.err
	}
	return ctx.Err()
}

func (s *Store) insertLocked(txns []domain.Transaction) int64 {
	var inserted int64
	for _, t := range txns {
		if _, dup := s.ids[t.ID]; dup {
			continue
		}
		t.Date = t.Date.UTC()
		s.ids[t.ID] = struct{}{}
		s.items = append(s.items, t)
		inserted++
	}
	sort.SliceStable(s.items, func(i, j int) bool {
		a, b := s.items[i], s.items[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
	return inserted
}

func (s *Store) filterLocked(filter domain.TransactionFilter) []domain.Transaction {
	out := []domain.Transaction{}
	for _, t := range s.items {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// window copies items[offset:offset+limit], clamped to the slice bounds.
func window(items []domain.Transaction, offset, limit int) []domain.Transaction {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || limit <= 0 {
		return []domain.Transaction{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]domain.Transaction, end-offset)
	copy(out, items[offset:end])
	return out
}
