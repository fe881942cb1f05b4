package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SscSPs/ledger_dashboard_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard_app/internal/dto"
	"github.com/SscSPs/ledger_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// transactionHandler serves the dashboard read endpoints
type transactionHandler struct {
	querySvc portssvc.TransactionQuerySvc
}

// newTransactionHandler creates a new transactionHandler
func newTransactionHandler(svc portssvc.TransactionQuerySvc) *transactionHandler {
	return &transactionHandler{
		querySvc: svc,
	}
}

// RegisterTransactionRoutes registers the transaction dashboard routes on rg
func RegisterTransactionRoutes(rg *gin.RouterGroup, svc portssvc.TransactionQuerySvc) {
	h := newTransactionHandler(svc)

	txns := rg.Group("/transactions")
	{
		txns.GET("/summary", h.getSummary)
		txns.GET("/monthly", h.getMonthly)
		txns.GET("/recent", h.getRecent)
		txns.GET("/by-date", h.searchTransactions)
	}
}

// getSummary godoc
// @Summary Get all-time totals
// @Description Returns balance, revenue, expenses and savings over every transaction
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} map[string]string "Failed to fetch summary"
// @Router /transactions/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to get summary")

	summary, err := h.querySvc.GetSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, logger, err, "Failed to fetch summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getMonthly godoc
// @Summary Get monthly revenue and expenses
// @Description With only year, returns twelve monthly totals. With year and month, returns that single month.
// @Tags transactions
// @Produce json
// @Param year query int true "Calendar year" minimum(1) maximum(9999)
// @Param month query int false "Month number (1-12)" minimum(1) maximum(12)
// @Success 200 {object} dto.MonthlyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to fetch monthly data"
// @Router /transactions/monthly [get]
func (h *transactionHandler) getMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for monthly", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	query := params.ToMonthlyQuery()
	logger = logger.With(slog.Int("year", query.Year), slog.Int("month", query.Month))
	logger.Info("Received request to get monthly data")

	report, err := h.querySvc.GetMonthly(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, logger, err, "Failed to fetch monthly data")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyResponse(report))
}

// getRecent godoc
// @Summary Get recent transactions
// @Description Returns the five newest transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to fetch recent transactions"
// @Router /transactions/recent [get]
func (h *transactionHandler) getRecent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.querySvc.GetRecent(c.Request.Context())
	if err != nil {
		h.respondError(c, logger, err, "Failed to fetch recent transactions")
		return
	}

	logger.Info("Recent transactions retrieved", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// searchTransactions godoc
// @Summary Search transactions
// @Description Filters by an inclusive date range and free text over category, status and user id, newest first
// @Tags transactions
// @Produce json
// @Param startDate query string false "First day (YYYY-MM-DD), applied only with endDate"
// @Param endDate query string false "Last day inclusive (YYYY-MM-DD), applied only with startDate"
// @Param search query string false "Case-insensitive text"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.SearchTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to fetch transactions"
// @Router /transactions/by-date [get]
func (h *transactionHandler) searchTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for search", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	query, err := params.ToSearchQuery()
	if err != nil {
		h.respondError(c, logger, err, "Failed to fetch transactions")
		return
	}

	logger.Info("Received request to search transactions",
		slog.Int("page", query.Page),
		slog.Int("limit", query.Limit),
		slog.String("search", query.Search))

	page, err := h.querySvc.Search(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, logger, err, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchTransactionsResponse(page))
}

// respondError maps service errors to a status. Internal causes are logged, not returned.
func (h *transactionHandler) respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error(failureMsg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
}

// bindingErrorMessage renders validator failures per field; other bind errors
// (e.g. a non-numeric page) are reported as is.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid query parameters: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			if fe.Kind() == reflect.String {
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
			}
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
