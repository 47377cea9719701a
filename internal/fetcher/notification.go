package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Alert is posted to the notify webhook when a cache failure needs attention.
type Alert struct {
	Operation string    `json:"operation"`
	Key       string    `json:"key"`
	Message   string    `json:"message"`
	Error     string    `json:"error,omitempty"`
	At        time.Time `json:"at"`
}

// Notification posts alerts to a webhook (e.g. a chat incoming-webhook URL).
// With an empty URL it does nothing.
type Notification struct {
	client *http.Client
	url    string
}

func NewNotification(client *http.Client, url string) *Notification {
	return &Notification{client: client, url: url}
}

func (n *Notification) Notify(ctx context.Context, alert Alert) error {
	if n == nil || n.url == "" {
		return nil
	}

	if alert.At.IsZero() {
		alert.At = time.Now().UTC()
	}

	return n.fetch(ctx, alert)
}

func (n *Notification) fetch(ctx context.Context, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	// #nosec G704 -- the webhook URL comes from operator configuration
	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
