package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/caseintake/internal/client/models"
)

// StoredImage is one entry of the imageUrls list the server returns after
// an upload.
type StoredImage struct {
	DownloadURL string `json:"downloadUrl"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
}

// NotificationResult carries the delivery confirmation of a dispatched case.
type NotificationResult struct {
	MessageID string `json:"messageId"`
	Timestamp string `json:"timestamp"`
	Recipient string `json:"recipient"`
}

// Client is the API contract the CLI depends on.
type Client interface {
	Ping(ctx context.Context) error
	StoreImages(ctx context.Context, caseID string, imgs []models.CompressedImage) ([]StoredImage, error)
	SendNotification(ctx context.Context, form *models.CaseForm, caseID string, imgs []models.CompressedImage) (*NotificationResult, error)
	SendTestNotification(ctx context.Context) (string, error)
}

// IntakeClient talks JSON to the intake server's /api/v1 endpoints.
type IntakeClient struct {
	baseURL string
	client  *http.Client
}

// NewIntakeClient builds a client for the given base URL. A nil http.Client
// falls back to a client with a 30 second timeout.
func NewIntakeClient(baseURL string, client *http.Client) *IntakeClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &IntakeClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Ping probes server reachability.
func (c *IntakeClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}
	return nil
}

type storeImagesRequest struct {
	CaseID string                   `json:"caseId"`
	Images []models.CompressedImage `json:"images"`
}

type storeImagesResponse struct {
	Success   bool          `json:"success"`
	ImageURLs []StoredImage `json:"imageUrls"`
	Error     string        `json:"error"`
}

// StoreImages uploads the case's compressed images and returns the
// download URL list in upload order.
func (c *IntakeClient) StoreImages(ctx context.Context, caseID string, imgs []models.CompressedImage) ([]StoredImage, error) {
	var resp storeImagesResponse
	err := c.postJSON(ctx, "/api/v1/images", storeImagesRequest{CaseID: caseID, Images: imgs}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.ImageURLs, nil
}

type notificationRequest struct {
	CustomerData *models.CaseForm         `json:"customerData"`
	ImageCount   int                      `json:"imageCount"`
	CaseID       string                   `json:"caseId"`
	Images       []models.CompressedImage `json:"images"`
}

type notificationResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Timestamp string `json:"timestamp"`
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

// SendNotification submits the assembled case for email delivery.
func (c *IntakeClient) SendNotification(ctx context.Context, form *models.CaseForm, caseID string, imgs []models.CompressedImage) (*NotificationResult, error) {
	body := notificationRequest{
		CustomerData: form,
		ImageCount:   len(imgs),
		CaseID:       caseID,
		Images:       imgs,
	}

	var resp notificationResponse
	if err := c.postJSON(ctx, "/api/v1/notifications", body, &resp); err != nil {
		return nil, err
	}

	return &NotificationResult{
		MessageID: resp.MessageID,
		Timestamp: resp.Timestamp,
		Recipient: resp.Recipient,
	}, nil
}

// SendTestNotification asks the server to send its canned
// configuration-check email and returns the message identifier.
func (c *IntakeClient) SendTestNotification(ctx context.Context) (string, error) {
	var resp notificationResponse
	if err := c.postJSON(ctx, "/api/v1/notifications?test=true", nil, &resp); err != nil {
		return "", err
	}
	return resp.MessageID, nil
}

// postJSON posts body as JSON and decodes the response into out. A 4xx
// status maps to ErrRejected with the server's error text, a transport
// failure to ErrUnavailable.
func (c *IntakeClient) postJSON(ctx context.Context, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &e)
		diag := e.Error
		if diag == "" {
			diag = string(data)
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return fmt.Errorf("%w: %s", ErrRejected, diag)
		}
		return fmt.Errorf("server error: %s: %s", resp.Status, diag)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
