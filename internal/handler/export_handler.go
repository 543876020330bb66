package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler handles report export requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportResponse represents a stored export in API responses
type ExportResponse struct {
	Format   string `json:"format"`
	Location string `json:"location"`
	Size     int64  `json:"size"`
}

// ExportByCategories godoc
// @Summary Export the by-categories report
// @Description Render the month's report and store it in the export storage
// @Tags reports
// @Produce json
// @Param month query string false "Month in YYYY-MM format (defaults to the current month)"
// @Param format query string false "Export format" Enums(csv, json, pdf, xlsx) default(csv)
// @Success 201 {object} ExportResponse
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /api/v1/reports/by-categories/export [post]
func (h *ExportHandler) ExportByCategories(c echo.Context) error {
	month := c.QueryParam("month")

	rawFormat := c.QueryParam("format")
	if rawFormat == "" {
		rawFormat = string(domain.ExportFormatCSV)
	}
	format, err := domain.ParseExportFormat(rawFormat)
	if err != nil {
		return NewValidationError(c, "Unsupported export format", []ValidationError{
			{Field: "format", Message: "Format must be one of csv, json, pdf, xlsx"},
		})
	}

	result, err := h.exportService.Export(c.Request().Context(), month, format)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMonth):
			return invalidMonthError(c)
		case errors.Is(err, domain.ErrStorageDisabled):
			return NewUnavailableError(c, "Report export is not configured")
		}
		log.Error().Err(err).Str("month", month).Str("format", string(format)).Msg("Failed to export report")
		return NewInternalError(c, "Failed to export report")
	}

	return c.JSON(http.StatusCreated, ExportResponse{
		Format:   string(result.Format),
		Location: result.Location,
		Size:     result.Size,
	})
}
