package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/dafibh/fortuna/fortuna-reports/internal/testutil"
	"github.com/dafibh/fortuna/fortuna-reports/internal/util"
	"github.com/labstack/echo/v4"
)

func TestGetAvailableMonths_Success(t *testing.T) {
	e := echo.New()
	transactionRepo := testutil.NewMockTransactionRepository()
	previous := time.Now().AddDate(0, 0, -40)
	transactionRepo.Add(testutil.Expense("t1", previous, -100, "", ""))
	h := NewMonthHandler(service.NewMonthService(transactionRepo))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/months", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetAvailableMonths(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []domain.MonthOption
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) < 2 {
		t.Fatalf("Expected at least 2 months, got %d", len(response))
	}
	if response[0].Name != util.CurrentMonth() {
		t.Errorf("Expected newest month %s first, got %s", util.CurrentMonth(), response[0].Name)
	}
	if response[len(response)-1].Name != util.MonthFromDate(previous) {
		t.Errorf("Expected oldest month %s last, got %s", util.MonthFromDate(previous), response[len(response)-1].Name)
	}
	if response[0].Pretty == "" {
		t.Error("Expected pretty month label")
	}
}

func TestGetAvailableMonths_Error(t *testing.T) {
	e := echo.New()
	transactionRepo := testutil.NewMockTransactionRepository()
	transactionRepo.GetEarliestErr = errors.New("db down")
	h := NewMonthHandler(service.NewMonthService(transactionRepo))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/months", nil)
	rec := httptest.NewRecorder()

	if err := h.GetAvailableMonths(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
}
