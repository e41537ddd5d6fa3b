package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var testSecret = []byte("hub-test-secret")

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, "admin")
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ServeWs(hub, c, testSecret) })
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, userID uuid.UUID, role string) *websocket.Conn {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, userID, role, time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectedClients() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.ConnectedClients())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) integration.Event {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev integration.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return ev
}

func TestHub_RoutesEventsToRecipientsAndAdmins(t *testing.T) {
	hub, srv := startHub(t)

	contractor, other := uuid.New(), uuid.New()
	contractorConn := dial(t, srv, contractor, "contractor")
	otherConn := dial(t, srv, other, "contractor")
	adminConn := dial(t, srv, uuid.New(), "admin")
	waitForClients(t, hub, 3)

	requestID := uuid.New()
	if err := hub.NotifyContractorsAssigned(context.Background(), requestID, []uuid.UUID{contractor}); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if ev := readEvent(t, contractorConn); ev.Type != integration.EventContractorsAssigned {
		t.Fatalf("contractor got %q", ev.Type)
	}
	if ev := readEvent(t, adminConn); ev.Type != integration.EventContractorsAssigned {
		t.Fatalf("admin got %q", ev.Type)
	}

	// a follow-up event addressed to the other contractor proves the first was never queued for it
	if err := hub.Publish(context.Background(), integration.Event{Type: integration.EventPenaltyApplied, Recipients: []uuid.UUID{other}}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if ev := readEvent(t, otherConn); ev.Type != integration.EventPenaltyApplied {
		t.Fatalf("other contractor got %q first", ev.Type)
	}
}

func TestServeWs_RejectsBadTokens(t *testing.T) {
	_, srv := startHub(t)
	base := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	if _, resp, err := websocket.DefaultDialer.Dial(base, nil); err == nil || resp == nil || resp.StatusCode != 401 {
		t.Fatalf("missing token must be rejected with 401")
	}

	forged, err := middleware.IssueToken([]byte("other-secret"), uuid.New(), "admin", time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, resp, err := websocket.DefaultDialer.Dial(base+"?token="+forged, nil); err == nil || resp == nil || resp.StatusCode != 401 {
		t.Fatalf("forged token must be rejected with 401")
	}
}

func TestHub_PublishHonoursContext(t *testing.T) {
	hub := NewHub(nil, "admin") // dispatch loop not running

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := hub.Publish(ctx, integration.Event{Type: integration.EventQuoteSubmitted}); err == nil {
		t.Fatal("publish without a running hub must fail once the context expires")
	}
}
