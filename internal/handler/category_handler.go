package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category directory HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories godoc
// @Summary List categories
// @Description Category directory ordered by group and name
// @Tags categories
// @Produce json
// @Param includeHidden query bool false "Include hidden categories"
// @Success 200 {array} domain.Category
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /api/v1/categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	includeHidden := false
	if raw := c.QueryParam("includeHidden"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return NewValidationError(c, "Invalid includeHidden", []ValidationError{
				{Field: "includeHidden", Message: "Must be true or false"},
			})
		}
		includeHidden = parsed
	}

	categories, err := h.categoryService.GetCategories(c.Request().Context(), includeHidden)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get categories")
		return NewInternalError(c, "Failed to get categories")
	}

	if categories == nil {
		categories = []*domain.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}
