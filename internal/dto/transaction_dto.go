package dto

import (
	"time"
	"unicode/utf8"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyParams defines query parameters for the monthly series endpoint
type MonthlyParams struct {
	Year  *int `form:"year" binding:"required,min=1,max=9999"`
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
}

// ToMonthlyQuery converts bound params to the domain query. Month 0 means the whole year.
func (p MonthlyParams) ToMonthlyQuery() domain.MonthlyQuery {
	q := domain.MonthlyQuery{}
	if p.Year != nil {
		q.Year = *p.Year
	}
	if p.Month != nil {
		q.Month = *p.Month
	}
	return q
}

// SearchTransactionsParams defines query parameters for the filtered listing
type SearchTransactionsParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Search    string `form:"search" binding:"max=100"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=10" binding:"min=1,max=100"`
}

// ToSearchQuery parses the date bounds and converts params to the domain query.
func (p SearchTransactionsParams) ToSearchQuery() (domain.SearchQuery, error) {
	if !utf8.ValidString(p.Search) {
		return domain.SearchQuery{}, apperrors.NewValidationError("search must be valid UTF-8 text")
	}

	q := domain.SearchQuery{
		Search: p.Search,
		Page:   p.Page,
		Limit:  p.Limit,
	}

	var err error
	if q.StartDate, err = parseOptionalDate("startDate", p.StartDate); err != nil {
		return domain.SearchQuery{}, err
	}
	if q.EndDate, err = parseOptionalDate("endDate", p.EndDate); err != nil {
		return domain.SearchQuery{}, err
	}
	return q, nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("%s: %v", field, err)
	}
	return &t, nil
}

// SummaryResponse is the all-time totals payload
type SummaryResponse struct {
	Balance  decimal.Decimal `json:"Balance"`
	Revenue  decimal.Decimal `json:"Revenue"`
	Expenses decimal.Decimal `json:"Expenses"`
	Savings  decimal.Decimal `json:"Savings"`
}

// MonthlyResponse is the monthly series payload. Year is omitted for the single month form.
type MonthlyResponse struct {
	Year     *int              `json:"year,omitempty"`
	Labels   []string          `json:"labels"`
	Revenue  []decimal.Decimal `json:"revenue"`
	Expenses []decimal.Decimal `json:"expenses"`
}

// TransactionResponse is a single transaction record
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    domain.Category `json:"category"`
	Status      domain.Status   `json:"status"`
	UserID      string          `json:"user_id"`
	UserProfile string          `json:"user_profile"`
}

// SearchTransactionsResponse is one page of the filtered listing
type SearchTransactionsResponse struct {
	Transactions      []TransactionResponse `json:"transactions"`
	TotalPages        int                   `json:"totalPages"`
	CurrentPage       int                   `json:"currentPage"`
	TotalTransactions int64                 `json:"totalTransactions"`
}

// ToSummaryResponse converts a domain summary to its DTO
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Balance:  s.Balance,
		Revenue:  s.Revenue,
		Expenses: s.Expenses,
		Savings:  s.Savings,
	}
}

// ToMonthlyResponse converts a domain monthly report to its DTO
func ToMonthlyResponse(r *domain.MonthlyReport) MonthlyResponse {
	resp := MonthlyResponse{
		Labels:   r.Labels,
		Revenue:  r.Revenue,
		Expenses: r.Expenses,
	}
	if r.Year != 0 {
		year := r.Year
		resp.Year = &year
	}
	return resp
}

// ToTransactionResponse converts a domain transaction to its DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.UTC(),
		Amount:      t.Amount,
		Category:    t.Category,
		Status:      t.Status,
		UserID:      t.UserID,
		UserProfile: t.UserProfile,
	}
}

// ToTransactionResponses converts a slice, never returning nil
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ToSearchTransactionsResponse converts a domain page to its DTO
func ToSearchTransactionsResponse(p *domain.TransactionPage) SearchTransactionsResponse {
	return SearchTransactionsResponse{
		Transactions:      ToTransactionResponses(p.Transactions),
		TotalPages:        p.TotalPages,
		CurrentPage:       p.CurrentPage,
		TotalTransactions: p.TotalTransactions,
	}
}
