package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/caseintake/internal/common"
)

func notificationBody() string {
	return `{
		"customerData": {
			"firstName": "Jane",
			"lastName": "Doe",
			"phone": "555-0101",
			"email": "jane@example.com",
			"serviceType": "water-damage",
			"insuranceCompany": "Acme Mutual",
			"policyNumber": "P-100",
			"description": "Burst pipe in the kitchen"
		},
		"imageCount": 1,
		"caseId": "REG-ABC123XYZ",
		"images": [{"url": "data:image/jpeg;base64,YQ==", "name": "kitchen.jpg", "size": 1}]
	}`
}

func TestSendNotification_Success(t *testing.T) {
	mailer := &fakeMailer{id: "msg-42"}
	srv := newTestServer(t, Options{}, mailer)

	w := postJSON(srv.Router(), "/api/v1/notifications", notificationBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		MessageID string `json:"messageId"`
		Timestamp string `json:"timestamp"`
		Recipient string `json:"recipient"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "msg-42", resp.MessageID)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, "ops@example.com", resp.Recipient)

	require.Len(t, mailer.sent, 1)
	sent := mailer.sent[0]
	assert.Contains(t, sent.Subject, "WATER-DAMAGE")
	assert.Contains(t, sent.Subject, "REG-ABC123XYZ")
	assert.Contains(t, sent.HTML, "Jane")
	assert.Contains(t, sent.HTML, "kitchen.jpg")
}

func TestSendNotification_ValidationFailure(t *testing.T) {
	mailer := &fakeMailer{id: "msg-42"}
	srv := newTestServer(t, Options{}, mailer)

	body := `{"customerData": {"firstName": "Jane"}, "caseId": "REG-ABC123XYZ"}`
	w := postJSON(srv.Router(), "/api/v1/notifications", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "lastName")
	// nothing was sent
	assert.Empty(t, mailer.sent)
}

func TestSendNotification_MissingCaseID(t *testing.T) {
	mailer := &fakeMailer{}
	srv := newTestServer(t, Options{}, mailer)

	body := `{"customerData": {"firstName": "Jane", "lastName": "Doe", "phone": "555-0101"}}`
	w := postJSON(srv.Router(), "/api/v1/notifications", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSendNotification_DeliveryFailure(t *testing.T) {
	mailer := &fakeMailer{err: fmt.Errorf("%w: provider rejected the message", common.ErrDelivery)}
	srv := newTestServer(t, Options{}, mailer)

	w := postJSON(srv.Router(), "/api/v1/notifications", notificationBody())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "failed to send notification email")
}

func TestSendNotification_TestMode(t *testing.T) {
	mailer := &fakeMailer{id: "msg-test"}
	srv := newTestServer(t, Options{}, mailer)

	// deliberately empty body: test mode skips payload parsing
	w := postJSON(srv.Router(), "/api/v1/notifications?test=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		MessageID string `json:"messageId"`
		Test      bool   `json:"test"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Test)
	assert.Equal(t, "msg-test", resp.MessageID)
	require.Len(t, mailer.sent, 1)
}

func TestSendNotification_TestModeFailure(t *testing.T) {
	mailer := &fakeMailer{err: common.ErrDelivery}
	srv := newTestServer(t, Options{}, mailer)

	w := postJSON(srv.Router(), "/api/v1/notifications?test=true", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
