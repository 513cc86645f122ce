package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/caseintake/internal/logging"
	"github.com/dmitrijs2005/caseintake/internal/server/mail"
	"github.com/dmitrijs2005/caseintake/internal/server/repositories/images"
	"github.com/dmitrijs2005/caseintake/internal/server/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMailer struct {
	id   string
	err  error
	sent []*mail.Message
}

func (f *fakeMailer) Send(ctx context.Context, m *mail.Message) (string, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestServer wires a server over an in-memory store and a fake mailer.
func newTestServer(t *testing.T, opts Options, m mail.Mailer) *HTTPServer {
	t.Helper()
	if m == nil {
		m = &fakeMailer{id: "msg-1"}
	}
	return NewHTTPServer(
		opts,
		services.NewImageService(images.NewInMemoryRepository()),
		services.NewSubmissionService(),
		services.NewNotificationService(m, "intake@example.com", []string{"ops@example.com"}),
		testLogger(),
	)
}

func TestPing(t *testing.T) {
	srv := newTestServer(t, Options{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
