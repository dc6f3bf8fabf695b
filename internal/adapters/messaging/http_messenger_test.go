package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/warden/internal/ports/secondary"
)

func TestSend(t *testing.T) {
	var got wirePayload
	var path, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewHTTPMessenger(srv.URL, time.Second)
	err := m.Send(context.Background(), secondary.OutboundMessage{
		To:       "agent:impl-1",
		Subject:  "New Assignment: auth-core",
		Priority: secondary.MessagePriorityHigh,
		Type:     "assignment",
		Body:     "You are assigned module auth-core.",
	})
	if err != nil {
		t.Fatal(err)
	}

	if path != "/messages" {
		t.Errorf("path = %s", path)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %s", contentType)
	}
	if got.To != "agent:impl-1" || got.Priority != "high" {
		t.Errorf("payload: %+v", got)
	}
	if got.Content.Type != "assignment" || got.Content.Message == "" {
		t.Errorf("content: %+v", got.Content)
	}
}

func TestSendNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session not found", http.StatusNotFound)
	}))
	defer srv.Close()

	m := NewHTTPMessenger(srv.URL, time.Second)
	err := m.Send(context.Background(), secondary.OutboundMessage{To: "agent:ghost", Type: "assignment"})
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "agent:ghost") || !strings.Contains(err.Error(), "session not found") {
		t.Errorf("error should carry recipient and body detail: %v", err)
	}
}

func TestSendUnreachableEndpoint(t *testing.T) {
	m := NewHTTPMessenger("http://127.0.0.1:1", 200*time.Millisecond)
	if err := m.Send(context.Background(), secondary.OutboundMessage{To: "agent:impl-1"}); err == nil {
		t.Error("expected connection error")
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sessions/agent:impl-1" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	m := NewHTTPMessenger(srv.URL, time.Second)
	if err := m.Ping(context.Background(), "agent:impl-1"); err != nil {
		t.Errorf("reachable session: %v", err)
	}
	if err := m.Ping(context.Background(), "agent:ghost"); err == nil {
		t.Error("missing session should fail the probe")
	}
}
