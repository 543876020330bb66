package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dafibh/fortuna/fortuna-reports/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/dafibh/fortuna/fortuna-reports/internal/testutil"
	"github.com/dafibh/fortuna/fortuna-reports/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	reportService := service.NewReportService(transactionRepo, categoryRepo)

	e := echo.New()
	rateLimiter := middleware.NewRateLimiterWithConfig(600, 100)
	defer rateLimiter.Stop()

	RegisterRoutes(e, rateLimiter, Handlers{
		Report:    NewReportHandler(reportService),
		Month:     NewMonthHandler(service.NewMonthService(transactionRepo)),
		Category:  NewCategoryHandler(service.NewCategoryService(categoryRepo)),
		Export:    NewExportHandler(service.NewExportService(reportService, testutil.NewMockExportStore())),
		WebSocket: NewWebSocketHandler(websocket.NewHub(), nil),
	})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/openapi.json", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/months", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/by-categories?month=2024-03", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/by-categories/none/transactions?month=2024-03", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/by-categories/food/transactions?month=2024-03", http.StatusNotFound},
		{http.MethodPost, "/api/v1/reports/by-categories/export?month=2024-03&format=json", http.StatusCreated},
		{http.MethodGet, "/api/v1/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			if strings.HasPrefix(tt.path, "/api/v1/reports") || tt.path == "/api/v1/categories" {
				assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
			}
		})
	}
}
