package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WhatsAppMessage is sent to the WhatsApp gateway sidecar, which owns the
// Business API session and template management.
type WhatsAppMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Event   string `json:"event"` // approval_needed | approved | discrepancy_found
}

// WhatsAppClient is an HTTP client that delegates message delivery to the
// gateway sidecar. Keeping the Business API out of process isolates its
// failures from the backend.
type WhatsAppClient struct {
	gatewayURL string
	httpClient *http.Client
}

func NewWhatsAppClient(gatewayURL string) *WhatsAppClient {
	return &WhatsAppClient{
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts one message to the gateway.
func (c *WhatsAppClient) Send(ctx context.Context, msg WhatsAppMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp: gateway returned %d", resp.StatusCode)
	}
	return nil
}
