package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// MonthHandler handles month selector HTTP requests
type MonthHandler struct {
	monthService *service.MonthService
}

// NewMonthHandler creates a new MonthHandler
func NewMonthHandler(monthService *service.MonthService) *MonthHandler {
	return &MonthHandler{
		monthService: monthService,
	}
}

// GetAvailableMonths godoc
// @Summary List report months
// @Description Months from the earliest recorded transaction up to the current month, newest first
// @Tags reports
// @Produce json
// @Success 200 {array} domain.MonthOption
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /api/v1/reports/months [get]
func (h *MonthHandler) GetAvailableMonths(c echo.Context) error {
	months, err := h.monthService.AvailableMonths(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list available months")
		return NewInternalError(c, "Failed to list months")
	}
	return c.JSON(http.StatusOK, months)
}
