package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_dashboard_app/internal/models"
	"github.com/SscSPs/ledger_dashboard_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedLockKey identifies the advisory lock serialising concurrent seeders.
const seedLockKey int64 = 0x6c656467657273 // "ledgers"

const transactionColumns = `external_id, txn_date, amount, category, status, user_id, user_profile`

// PgxTransactionRepository serves the dashboard queries from the transactions table.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SumByCategory sums amounts per category, optionally within a half-open window.
func (r *PgxTransactionRepository) SumByCategory(ctx context.Context, window *domain.DateRange) (domain.CategoryTotals, error) {
	query := `SELECT category, COALESCE(SUM(amount), 0) FROM transactions`
	var args []any
	if window != nil {
		query += ` WHERE txn_date >= $1 AND txn_date < $2`
		args = append(args, window.From, window.To)
	}
	query += ` GROUP BY category`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum transactions by category", err)
	}
	defer rows.Close()

	totals := domain.CategoryTotals{}
	for rows.Next() {
		var category string
		var total decimal.Decimal
		if err := rows.Scan(&category, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category total", err)
		}
		totals[domain.Category(category)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category totals", err)
	}

	return totals, nil
}

// SumByMonthAndCategory groups the window by (calendar month in UTC, category).
func (r *PgxTransactionRepository) SumByMonthAndCategory(ctx context.Context, window domain.DateRange) ([]domain.MonthlyCategoryTotal, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM txn_date AT TIME ZONE 'UTC')::int AS month,
			category,
			SUM(amount) AS total
		FROM transactions
		WHERE txn_date >= $1 AND txn_date < $2
		GROUP BY 1, 2
		ORDER BY 1
	`

	rows, err := r.Pool.Query(ctx, query, window.From, window.To)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to group transactions by month", err)
	}
	defer rows.Close()

	result := []domain.MonthlyCategoryTotal{}
	for rows.Next() {
		var row domain.MonthlyCategoryTotal
		var category string
		if err := rows.Scan(&row.Month, &category, &row.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly total", err)
		}
		row.Category = domain.Category(category)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly totals", err)
	}

	return result, nil
}

// ListRecentTransactions returns the newest records. Ties on date are broken by external id.
func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY txn_date DESC, external_id DESC LIMIT $1`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent transactions", err)
	}
	return collectTransactions(rows)
}

// CountTransactions counts records matching the filter.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	where, args := buildFilterClause(filter, nil)

	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	return count, nil
}

// FindTransactions returns one page of matching records, newest first.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter, page domain.Pagination) ([]domain.Transaction, error) {
	where, args := buildFilterClause(filter, nil)

	query := `SELECT ` + transactionColumns + ` FROM transactions` + where +
		` ORDER BY txn_date DESC, external_id DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	return collectTransactions(rows)
}

// InsertTransactionsIfEmpty seeds the table under an advisory lock so that two
// instances starting together cannot both see an empty table and double insert.
// ON CONFLICT keeps the insert idempotent on external_id as a second guard.
func (r *PgxTransactionRepository) InsertTransactionsIfEmpty(ctx context.Context, txns []domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.LockXact(ctx, tx, seedLockKey); err != nil {
		return 0, err
	}

	var existing int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&existing); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions before seeding", err)
	}
	if existing > 0 || len(txns) == 0 {
		return 0, nil
	}

	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (external_id) DO NOTHING
	`
	batch := &pgx.Batch{}
	for _, t := range txns {
		m := mapping.ToModelTransaction(t)
		batch.Queue(insertQuery, m.ExternalID, m.TxnDate, m.Amount, m.Category, m.Status, m.UserID, m.UserProfile)
	}

	results := tx.SendBatch(ctx, batch)
	var inserted int64
	for i := 0; i < batch.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, apperrors.NewAppError(500, "failed to insert seed transaction "+strconv.FormatInt(txns[i].ID, 10), err)
		}
		inserted += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to close seed batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	result := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.ExternalID,
			&m.TxnDate,
			&m.Amount,
			&m.Category,
			&m.Status,
			&m.UserID,
			&m.UserProfile,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(result), nil
}

// buildFilterClause renders the WHERE clause for a filter, numbering placeholders
// after any args already present. The search token is matched literally.
func buildFilterClause(filter domain.TransactionFilter, args []any) (string, []any) {
	var conditions []string
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Range != nil {
		conditions = append(conditions, "txn_date >= "+next(filter.Range.From)+" AND txn_date < "+next(filter.Range.To))
	}
	if filter.Search != "" {
		p := next("%" + escapeLike(filter.Search) + "%")
		conditions = append(conditions, "(category ILIKE "+p+" OR status ILIKE "+p+" OR user_id ILIKE "+p+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards; backslash is the default escape character in Postgres.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
