// Package notifier sends outbound messages through the SMS gateway.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onereply/onereply/pkg/logger"
)

// Notifier is the outbound effect boundary of the responder.
type Notifier interface {
	// Send delivers message to number through the given device slot.
	// The returned payload is the gateway's "data" field.
	Send(ctx context.Context, number, message, deviceID string) (*SendResult, error)
}

// SendResult carries whatever the gateway reported about the send.
type SendResult struct {
	Data json.RawMessage
}

// GatewayClient talks to the SMS gateway's send endpoint. One synchronous
// POST per message, no retry; delivery is best-effort by contract.
type GatewayClient struct {
	server string
	apiKey string
	client *http.Client
}

func NewGatewayClient(server, apiKey string) *GatewayClient {
	return &GatewayClient{
		server: strings.TrimSuffix(server, "/"),
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type gatewayResponse struct {
	Data json.RawMessage `json:"data"`
}

func (g *GatewayClient) Send(ctx context.Context, number, message, deviceID string) (*SendResult, error) {
	form := url.Values{
		"number":     {number},
		"message":    {message},
		"devices":    {deviceID},
		"type":       {"mms"},
		"prioritize": {"1"},
		"key":        {g.apiKey},
	}

	endpoint := g.server + "/services/send.php"
	logger.DebugCF("notifier", "Sending message", map[string]interface{}{
		"number": number,
		"device": deviceID,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var parsed gatewayResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if len(parsed.Data) == 0 || string(parsed.Data) == "null" {
		return nil, fmt.Errorf("gateway response has no data field")
	}

	return &SendResult{Data: parsed.Data}, nil
}
