package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	month    string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id, month string) *mockClient {
	return &mockClient{
		id:       id,
		month:    month,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Month() string {
	return m.month
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func waitForMessages(t *testing.T, c *mockClient, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(c.GetMessages()) >= n }, time.Second, 5*time.Millisecond)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1", "2024-03")
	client2 := newMockClient("client-2", "2024-03")
	client3 := newMockClient("client-3", "2024-02")

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	assert.Equal(t, 2, hub.ClientCount("2024-03"))
	assert.Equal(t, 1, hub.ClientCount("2024-02"))
	assert.Equal(t, 0, hub.ClientCount("1999-01"))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount("2024-03"))

	hub.Unregister(client2)
	hub.Unregister(client3)
	assert.Equal(t, 0, hub.TotalClientCount())
	assert.Empty(t, hub.Months())

	// unregistering twice is a no-op
	hub.Unregister(client3)
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_Months(t *testing.T) {
	hub := NewHub()
	hub.Register(newMockClient("a", "2023-12"))
	hub.Register(newMockClient("b", "2024-03"))
	hub.Register(newMockClient("c", "2024-03"))
	hub.Register(newMockClient("d", "2024-01"))

	assert.Equal(t, []string{"2024-03", "2024-01", "2023-12"}, hub.Months())
}

func TestHub_Broadcast_MonthIsolation(t *testing.T) {
	hub := NewHub()

	marchA := newMockClient("march-a", "2024-03")
	marchB := newMockClient("march-b", "2024-03")
	february := newMockClient("february", "2024-02")

	hub.Register(marchA)
	hub.Register(marchB)
	hub.Register(february)

	hub.Broadcast("2024-03", ReportUpdated(map[string]interface{}{"month": "2024-03"}))

	waitForMessages(t, marchA, 1)
	waitForMessages(t, marchB, 1)

	time.Sleep(10 * time.Millisecond)
	assert.Len(t, february.GetMessages(), 0, "february subscriber should not receive march events")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(marchA.GetMessages()[0], &decoded))
	assert.Equal(t, "report.updated", decoded["type"])
	assert.Equal(t, "report", decoded["entity"])
}

func TestHub_Broadcast_MultipleFanOut(t *testing.T) {
	hub := NewHub()

	clients := make([]*mockClient, 5)
	for i := range clients {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), "2024-03")
		hub.Register(clients[i])
	}

	hub.Broadcast("2024-03", ReportError("2024-03", "boom"))

	for _, c := range clients {
		waitForMessages(t, c, 1)
	}
}

func TestHub_Broadcast_NoSubscribers(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Broadcast("2024-03", ReportUpdated(nil))
	})
}

func TestHub_Broadcast_ClosedClient(t *testing.T) {
	hub := NewHub()

	open := newMockClient("open", "2024-03")
	closed := newMockClient("closed", "2024-03")
	require.NoError(t, closed.Close())

	hub.Register(open)
	hub.Register(closed)

	hub.Broadcast("2024-03", ReportUpdated(nil))

	waitForMessages(t, open, 1)
	assert.Len(t, closed.GetMessages(), 0)
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	clientCount := 50

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), fmt.Sprintf("2024-%02d", i%12+1))
	}

	for _, c := range clients {
		wg.Add(1)
		go func(c *mockClient) {
			defer wg.Done()
			hub.Register(c)
		}(c)
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Broadcast("2024-01", ReportUpdated(nil))
			_ = hub.Months()
		}()
	}
	wg.Wait()

	assert.Equal(t, clientCount, hub.TotalClientCount())

	for _, c := range clients {
		wg.Add(1)
		go func(c *mockClient) {
			defer wg.Done()
			hub.Unregister(c)
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.TotalClientCount())
}
