package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/infrastructure/realtime"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/presentation/controller"
	hubhttp "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/presentation/http"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/adapter"
)

// newHubServer stands up the full HTTP surface around an in-memory store and
// returns the websocket URL clients dial.
func newHubServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := adapter.NewMemory()
	router := realtime.NewRouter()
	t.Cleanup(router.Close)

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	hubhttp.RegisterRoutes(v1, store, router, zap.NewNop(), controller.SocketOptions{
		MaxMessageSize: 64 * 1024,
		SendBuffer:     32,
	})

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/hub/ws"
}

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial hub: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func send(t *testing.T, client *websocket.Conn, frame map[string]any) {
	t.Helper()
	if err := client.WriteJSON(frame); err != nil {
		t.Fatalf("write frame: %v", err)
	}
}

// expect reads the next frame and asserts its type, returning the full
// decoded frame for further checks.
func expect(t *testing.T, client *websocket.Conn, frameType string) map[string]any {
	t.Helper()
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("reading frame (want %q): %v", frameType, err)
	}
	var frame map[string]any
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	if got, _ := frame["type"].(string); got != frameType {
		t.Fatalf("frame type = %q, want %q (frame: %s)", got, frameType, data)
	}
	return frame
}

func expectError(t *testing.T, client *websocket.Conn, code string) {
	t.Helper()
	frame := expect(t, client, "error")
	if got, _ := frame["code"].(string); got != code {
		t.Fatalf("error code = %q, want %q", got, code)
	}
}

func TestHubEndToEnd(t *testing.T) {
	url := newHubServer(t)

	alice := dialHub(t, url)
	expect(t, alice, "connected")

	send(t, alice, map[string]any{"type": "register", "displayName": "Alice"})
	expect(t, alice, "presence-list")

	bob := dialHub(t, url)
	connected := expect(t, bob, "connected")
	bobID, _ := connected["connectionId"].(string)
	if bobID == "" {
		t.Fatal("connected frame carried no connectionId")
	}

	send(t, bob, map[string]any{"type": "register", "displayName": "Bob"})
	expect(t, alice, "presence-list")
	frame := expect(t, bob, "presence-list")
	if participants, _ := frame["participants"].([]any); len(participants) != 2 {
		t.Fatalf("presence list has %d participants, want 2", len(participants))
	}

	send(t, alice, map[string]any{"type": "create-group", "name": "gophers"})
	created := expect(t, alice, "group-created")
	expect(t, bob, "group-created")
	group, _ := created["group"].(map[string]any)
	groupID, _ := group["id"].(string)
	if groupID == "" {
		t.Fatal("group-created frame carried no group id")
	}

	send(t, bob, map[string]any{"type": "join-group", "groupId": groupID})
	expect(t, alice, "group-member-joined")
	expect(t, bob, "group-member-joined")
	history := expect(t, bob, "group-message-history")
	if messages, _ := history["messages"].([]any); len(messages) != 0 {
		t.Fatalf("fresh group history has %d messages, want 0", len(messages))
	}

	send(t, bob, map[string]any{"type": "send-group", "groupId": groupID, "content": "hi"})
	for _, client := range []*websocket.Conn{alice, bob} {
		frame := expect(t, client, "group-message")
		message, _ := frame["message"].(map[string]any)
		if content, _ := message["content"].(string); content != "hi" {
			t.Fatalf("group message content = %q, want hi", content)
		}
	}

	send(t, alice, map[string]any{"type": "set-typing", "scope": "personal", "recipientId": bobID, "isTyping": true})
	typing := expect(t, bob, "typing")
	if name, _ := typing["displayName"].(string); name != "Alice" {
		t.Fatalf("typing displayName = %q, want Alice", name)
	}

	// Bob drops the socket: Alice sees the group eviction and a fresh
	// presence list.
	_ = bob.Close()
	expect(t, alice, "group-member-left")
	expect(t, alice, "presence-list")
}

func TestHubCommunityFlow(t *testing.T) {
	url := newHubServer(t)

	client := dialHub(t, url)
	expect(t, client, "connected")
	send(t, client, map[string]any{"type": "register", "displayName": "Alice"})
	expect(t, client, "presence-list")

	send(t, client, map[string]any{"type": "join-community"})
	joined := expect(t, client, "community-member-joined")
	if total, _ := joined["totalMembers"].(float64); total != 1 {
		t.Fatalf("totalMembers = %v, want 1", joined["totalMembers"])
	}
	expect(t, client, "community-message-history")

	send(t, client, map[string]any{"type": "send-community", "content": "hello all"})
	frame := expect(t, client, "community-message")
	message, _ := frame["message"].(map[string]any)
	if content, _ := message["content"].(string); content != "hello all" {
		t.Fatalf("community message content = %q, want hello all", content)
	}

	// Re-join replays history without a duplicate member-joined.
	send(t, client, map[string]any{"type": "join-community"})
	history := expect(t, client, "community-message-history")
	if messages, _ := history["messages"].([]any); len(messages) != 1 {
		t.Fatalf("community history has %d messages, want 1", len(messages))
	}
}

func TestHubErrorFrames(t *testing.T) {
	url := newHubServer(t)

	alice := dialHub(t, url)
	expect(t, alice, "connected")

	// Everything but register requires a presence record first.
	send(t, alice, map[string]any{"type": "send-group", "groupId": "g", "content": "hi"})
	expectError(t, alice, "not_registered")

	send(t, alice, map[string]any{"type": "register", "displayName": "   "})
	expectError(t, alice, "validation_error")

	send(t, alice, map[string]any{"type": "register", "displayName": "Alice"})
	expect(t, alice, "presence-list")

	send(t, alice, map[string]any{"type": "join-group", "groupId": "missing"})
	expectError(t, alice, "group_not_found")

	send(t, alice, map[string]any{"type": "create-group", "name": "vault", "secret": "s3cret"})
	created := expect(t, alice, "group-created")
	group, _ := created["group"].(map[string]any)
	groupID, _ := group["id"].(string)
	if secret, present := group["secret"]; present {
		t.Fatalf("group frame leaked secret: %v", secret)
	}

	bob := dialHub(t, url)
	expect(t, bob, "connected")
	send(t, bob, map[string]any{"type": "register", "displayName": "Bob"})
	expect(t, alice, "presence-list")
	expect(t, bob, "presence-list")

	send(t, bob, map[string]any{"type": "join-group", "groupId": groupID, "secret": "wrong"})
	expectError(t, bob, "access_denied")

	send(t, bob, map[string]any{"type": "send-group", "groupId": groupID, "content": "let me in"})
	expectError(t, bob, "not_a_member")

	if err := bob.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write malformed frame: %v", err)
	}
	expectError(t, bob, "bad_request")

	send(t, bob, map[string]any{"type": "warp"})
	expectError(t, bob, "unsupported_type")
}
