package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/caseintake/internal/common"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendMailer delivers messages through the Resend HTTP API
// (POST /emails). No timeout is enforced here; callers set one on the
// request context or on the injected http.Client.
type ResendMailer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewResendMailer builds a mailer for the given API key. A nil client
// falls back to http.DefaultClient.
func NewResendMailer(apiKey string, client *http.Client) *ResendMailer {
	if client == nil {
		client = http.DefaultClient
	}
	return &ResendMailer{apiKey: apiKey, baseURL: defaultResendBaseURL, client: client}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send posts the message and returns the channel-assigned identifier.
// A non-2xx status yields common.ErrDelivery carrying the channel's
// diagnostic text.
func (m *ResendMailer) Send(ctx context.Context, msg *Message) (string, error) {
	payload, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDelivery, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", common.ErrDelivery, err)
	}

	var parsed resendResponse
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		diag := parsed.Message
		if diag == "" {
			diag = string(body)
		}
		return "", fmt.Errorf("%w: %s: %s", common.ErrDelivery, resp.Status, diag)
	}

	return parsed.ID, nil
}
