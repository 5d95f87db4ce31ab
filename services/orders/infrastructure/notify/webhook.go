// Package notify delivers batch lifecycle notifications to a downstream
// webhook consumer. Delivery is best-effort: no retry beyond the event bus's
// redelivery, no confirmation tracked, failures only logged by the caller.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookNotifier POSTs JSON notifications to one configured endpoint.
// A notifier with an empty URL is valid and drops every notification.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier returns a notifier targeting url.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a webhook endpoint is configured.
func (n *WebhookNotifier) Enabled() bool {
	return n.url != ""
}

// Notify POSTs payload as JSON. Non-2xx responses are reported as errors so
// the caller can log them; the notification is not re-sent.
func (n *WebhookNotifier) Notify(ctx context.Context, payload any) error {
	if !n.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("deliver notification: unexpected status %d", resp.StatusCode)
	}
	return nil
}
