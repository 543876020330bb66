package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/report"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TransactionResponse represents a drill-down transaction in API responses
type TransactionResponse struct {
	ID         string `json:"id"`
	AccountID  string `json:"accountId"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	CategoryID string `json:"categoryId,omitempty"`
	Notes      string `json:"notes"`
}

// GetByCategories godoc
// @Summary Spending by category
// @Description Per-category spending totals for a month with the per-note drill-down and the pie chart description
// @Tags reports
// @Produce json
// @Param month query string false "Month in YYYY-MM format (defaults to the current month)"
// @Success 200 {object} report.View
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /api/v1/reports/by-categories [get]
func (h *ReportHandler) GetByCategories(c echo.Context) error {
	month := c.QueryParam("month")

	rep, err := h.reportService.ByCategories(c.Request().Context(), month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) {
			return invalidMonthError(c)
		}
		log.Error().Err(err).Str("month", month).Msg("Failed to build by-categories report")
		return NewInternalError(c, "Failed to build report")
	}

	return c.JSON(http.StatusOK, report.NewView(rep))
}

// GetCategoryTransactions godoc
// @Summary Drill-down transactions
// @Description Spending transactions of one category in a month. The id "none" selects uncategorized transactions.
// @Tags reports
// @Produce json
// @Param categoryId path string true "Category ID or none"
// @Param month query string false "Month in YYYY-MM format (defaults to the current month)"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /api/v1/reports/by-categories/{categoryId}/transactions [get]
func (h *ReportHandler) GetCategoryTransactions(c echo.Context) error {
	month := c.QueryParam("month")
	categoryID := c.Param("categoryId")

	transactions, err := h.reportService.CategoryTransactions(c.Request().Context(), month, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMonth):
			return invalidMonthError(c)
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Category is required", []ValidationError{
				{Field: "categoryId", Message: "Category is required"},
			})
		case errors.Is(err, domain.ErrNotFound):
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Str("month", month).Str("category_id", categoryID).Msg("Failed to get category transactions")
		return NewInternalError(c, "Failed to get transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		AccountID:  t.AccountID,
		Date:       t.Date.Format("2006-01-02"),
		Amount:     report.MajorUnits(t.Amount).StringFixed(2),
		CategoryID: t.CategoryID,
		Notes:      t.Notes,
	}
}
