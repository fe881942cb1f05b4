package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentLimit is how many records GetRecent returns.
const RecentLimit = 5

const (
	minYear = 1
	maxYear = 9999
)

// transactionQueryService implements the TransactionQuerySvc interface
type transactionQueryService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewTransactionQueryService creates the dashboard query engine over a record store.
func NewTransactionQueryService(repo portsrepo.TransactionReader) portssvc.TransactionQuerySvc {
	return &transactionQueryService{txnRepo: repo}
}

// Ensure transactionQueryService implements the TransactionQuerySvc interface
var _ portssvc.TransactionQuerySvc = (*transactionQueryService)(nil)

// GetSummary computes all-time totals. An empty store yields an all-zero summary.
func (s *transactionQueryService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	totals, err := s.txnRepo.SumByCategory(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category totals for summary")
		return nil, fmt.Errorf("failed to retrieve summary totals: %w", err)
	}

	summary := domain.NewSummary(totals.Get(domain.Revenue), totals.Get(domain.Expense))

	s.LogInfo(ctx, "Summary computed successfully",
		slog.String("revenue", summary.Revenue.String()),
		slog.String("expenses", summary.Expenses.String()))
	return &summary, nil
}

// GetMonthly returns either the twelve month series of a year or a one entry
// series for a single month of it.
func (s *transactionQueryService) GetMonthly(ctx context.Context, query domain.MonthlyQuery) (*domain.MonthlyReport, error) {
	if err := validateMonthlyQuery(query); err != nil {
		return nil, err
	}

	if query.Month != 0 {
		return s.singleMonth(ctx, query.Year, time.Month(query.Month))
	}
	return s.fullYear(ctx, query.Year)
}

func (s *transactionQueryService) singleMonth(ctx context.Context, year int, month time.Month) (*domain.MonthlyReport, error) {
	window := domain.MonthRange(year, month)

	totals, err := s.txnRepo.SumByCategory(ctx, &window)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly totals",
			slog.Int("year", year),
			slog.Int("month", int(month)))
		return nil, fmt.Errorf("failed to retrieve monthly totals: %w", err)
	}

	return &domain.MonthlyReport{
		Labels:   []string{fmt.Sprintf("%d-%d", int(month), year)},
		Revenue:  []decimal.Decimal{totals.Get(domain.Revenue)},
		Expenses: []decimal.Decimal{totals.Get(domain.Expense)},
	}, nil
}

func (s *transactionQueryService) fullYear(ctx context.Context, year int) (*domain.MonthlyReport, error) {
	rows, err := s.txnRepo.SumByMonthAndCategory(ctx, domain.YearRange(year))
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve yearly totals", slog.Int("year", year))
		return nil, fmt.Errorf("failed to retrieve yearly totals: %w", err)
	}

	report := &domain.MonthlyReport{
		Year:     year,
		Labels:   append([]string(nil), domain.MonthNames[:]...),
		Revenue:  zeroSeries(len(domain.MonthNames)),
		Expenses: zeroSeries(len(domain.MonthNames)),
	}

	// Output is rebuilt by index so the order rows come back in does not matter.
	for _, row := range rows {
		idx := row.Month - 1
		if idx < 0 || idx >= len(domain.MonthNames) {
			s.LogWarn(ctx, "Ignoring grouped row with month out of range", slog.Int("month", row.Month))
			continue
		}
		switch row.Category {
		case domain.Revenue:
			report.Revenue[idx] = report.Revenue[idx].Add(row.Total)
		case domain.Expense:
			report.Expenses[idx] = report.Expenses[idx].Add(row.Total)
		default:
			s.LogWarn(ctx, "Ignoring grouped row with unknown category", slog.String("category", string(row.Category)))
		}
	}

	s.LogDebug(ctx, "Yearly series built", slog.Int("year", year), slog.Int("group_count", len(rows)))
	return report, nil
}

// GetRecent returns the RecentLimit newest records, ties broken by id descending.
func (s *transactionQueryService) GetRecent(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListRecentTransactions(ctx, RecentLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve recent transactions")
		return nil, fmt.Errorf("failed to retrieve recent transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

// Search filters by an inclusive day range and a free text token, then pages
// the matches newest first. Count and page are fetched concurrently; records
// are immutable so the two reads need not be atomic.
func (s *transactionQueryService) Search(ctx context.Context, query domain.SearchQuery) (*domain.TransactionPage, error) {
	filter, err := s.buildFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	offset, inRange := pagination.Offset(query.Page, query.Limit)
	window := domain.Pagination{
		Limit:  query.Limit,
		Offset: offset,
	}

	var (
		total int64
		txns  []domain.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.txnRepo.CountTransactions(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}
		total = n
		return nil
	})
	if inRange {
		g.Go(func() error {
			found, err := s.txnRepo.FindTransactions(gctx, filter, window)
			if err != nil {
				return fmt.Errorf("failed to find transactions: %w", err)
			}
			txns = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to search transactions",
			slog.Int("page", query.Page),
			slog.Int("limit", query.Limit))
		return nil, err
	}

	if txns == nil {
		txns = []domain.Transaction{}
	}

	page := &domain.TransactionPage{
		Transactions:      txns,
		TotalPages:        pagination.TotalPages(total, query.Limit),
		CurrentPage:       query.Page,
		TotalTransactions: total,
	}

	s.LogInfo(ctx, "Transactions searched successfully",
		slog.Int("page", page.CurrentPage),
		slog.Int("returned", len(page.Transactions)),
		slog.Int64("total", page.TotalTransactions))
	return page, nil
}

func (s *transactionQueryService) buildFilter(ctx context.Context, query domain.SearchQuery) (domain.TransactionFilter, error) {
	if query.Page < 1 {
		return domain.TransactionFilter{}, apperrors.NewValidationError("page must be a positive integer")
	}
	if query.Limit < 1 || query.Limit > pagination.MaxLimit {
		return domain.TransactionFilter{}, apperrors.NewValidationError("limit must be between 1 and %d", pagination.MaxLimit)
	}

	filter := domain.TransactionFilter{Search: strings.TrimSpace(query.Search)}

	switch {
	case query.StartDate != nil && query.EndDate != nil:
		start := truncateToDay(*query.StartDate)
		end := truncateToDay(*query.EndDate)
		if start.After(end) {
			return domain.TransactionFilter{}, apperrors.NewValidationError("startDate must be before or equal to endDate")
		}
		// Inclusive end day becomes an exclusive bound at the following midnight.
		filter.Range = &domain.DateRange{From: start, To: end.AddDate(0, 0, 1)}
	case query.StartDate != nil || query.EndDate != nil:
		s.LogWarn(ctx, "Only one of startDate/endDate supplied, date filter not applied")
	}

	return filter, nil
}

func validateMonthlyQuery(query domain.MonthlyQuery) error {
	if query.Year == 0 {
		return apperrors.NewValidationError("year is required")
	}
	if query.Year < minYear || query.Year > maxYear {
		return apperrors.NewValidationError("year must be between %d and %d", minYear, maxYear)
	}
	if query.Month < 0 || query.Month > 12 {
		return apperrors.NewValidationError("month must be between 1 and 12")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func zeroSeries(n int) []decimal.Decimal {
	series := make([]decimal.Decimal, n)
	for i := range series {
		series[i] = decimal.Zero
	}
	return series
}
