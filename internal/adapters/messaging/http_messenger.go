// Package messaging contains the HTTP adapter for delivering messages to
// agent sessions. Delivery is best-effort by contract: callers treat errors
// as advisories and never let them block a state mutation.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/example/warden/internal/ports/secondary"
)

const defaultTimeout = 10 * time.Second

type wirePayload struct {
	To       string      `json:"to"`
	Subject  string      `json:"subject"`
	Priority string      `json:"priority"`
	Content  wireContent `json:"content"`
}

type wireContent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// HTTPMessenger posts messages to a collaborator messaging endpoint.
type HTTPMessenger struct {
	baseURL string
	client  *http.Client
}

// NewHTTPMessenger creates a messenger for the given base URL. A zero timeout
// falls back to the default.
func NewHTTPMessenger(baseURL string, timeout time.Duration) *HTTPMessenger {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPMessenger{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Send delivers one message. A non-2xx response is an error; the response
// body is folded into the error for the operator.
func (m *HTTPMessenger) Send(ctx context.Context, msg secondary.OutboundMessage) error {
	payload := wirePayload{
		To:       msg.To,
		Subject:  msg.Subject,
		Priority: msg.Priority,
		Content: wireContent{
			Type:    msg.Type,
			Message: msg.Body,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver message to %s: %w", msg.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("message to %s rejected: %s: %s", msg.To, resp.Status, bytes.TrimSpace(detail))
	}
	return nil
}

// Ping probes whether a session is reachable on the messaging endpoint.
func (m *HTTPMessenger) Ping(ctx context.Context, session string) error {
	probe := m.baseURL + "/sessions/" + url.PathEscape(session)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probe, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("session %s unreachable: %w", session, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("session %s unreachable: %s", session, resp.Status)
	}
	return nil
}

var _ secondary.Messenger = (*HTTPMessenger)(nil)
