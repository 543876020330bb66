package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-reports/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Report    *ReportHandler
	Month     *MonthHandler
	Category  *CategoryHandler
	Export    *ExportHandler
	WebSocket *WebSocketHandler

	// Servers listed in the OpenAPI 3 document
	APIServers []Server
}

// HealthCheck godoc
// @Summary Health check
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, h Handlers) {
	e.GET("/health", HealthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec(h.APIServers))
	e.GET("/ws", h.WebSocket.HandleWS)

	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/months", h.Month.GetAvailableMonths)
	reports.GET("/by-categories", h.Report.GetByCategories)
	reports.GET("/by-categories/:categoryId/transactions", h.Report.GetCategoryTransactions)
	reports.POST("/by-categories/export", h.Export.ExportByCategories)

	// Category routes
	api.GET("/categories", h.Category.GetCategories)
}
