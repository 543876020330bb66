package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowedOrigins = []string{"http://localhost:3001", "https://fortuna.app"}

func TestWebSocketHandler_HandleWS_InvalidMonth(t *testing.T) {
	e := echo.New()
	h := NewWebSocketHandler(websocket.NewHub(), testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws?month=garbage", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleWS(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebSocketHandler_HandleWS_NoUpgrade(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	// valid month but not a WebSocket upgrade request
	req := httptest.NewRequest(http.MethodGet, "/ws?month=2024-03", nil)
	rec := httptest.NewRecorder()

	err := h.HandleWS(e.NewContext(req, rec))
	assert.Error(t, err)
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	h := NewWebSocketHandler(websocket.NewHub(), testAllowedOrigins)

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3001", true},
		{"https://fortuna.app", true},
		{"https://evil.example", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, h.checkOrigin(req), tt.origin)
	}
}

func TestWebSocketHandler_SubscribeAndReceive(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)
	e.GET("/ws", h.HandleWS)

	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?month=2024-03"
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount("2024-03") == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish("2024-03", websocket.ReportUpdated(map[string]string{"month": "2024-03"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "report.updated", event.Type)
	assert.Equal(t, "2024-03", event.Payload["month"])

	// closing the connection unregisters the client
	conn.Close()
	require.Eventually(t, func() bool { return hub.TotalClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
