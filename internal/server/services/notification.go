package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/caseintake/internal/server/mail"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

// NotificationService renders assembled payloads and pushes them through
// the delivery channel exactly once per submission. Delivery failures
// propagate to the caller with the channel's diagnostics; there is no
// local retry or queuing.
type NotificationService struct {
	mailer     mail.Mailer
	from       string
	recipients []string
}

// NewNotificationService constructs the dispatcher for a fixed sender and
// recipient list.
func NewNotificationService(mailer mail.Mailer, from string, recipients []string) *NotificationService {
	return &NotificationService{mailer: mailer, from: from, recipients: recipients}
}

// Dispatch renders the payload and sends it, returning the channel's
// message identifier. The payload is consumed exactly once; a failed
// dispatch means the case was not delivered.
func (s *NotificationService) Dispatch(ctx context.Context, p *models.NotificationPayload) (string, error) {
	body, err := mail.RenderNotification(p)
	if err != nil {
		return "", err
	}

	id, err := s.mailer.Send(ctx, &mail.Message{
		From:    s.from,
		To:      s.recipients,
		Subject: mail.Subject(p),
		HTML:    body,
	})
	if err != nil {
		return "", fmt.Errorf("case %s: %w", p.CaseID, err)
	}
	return id, nil
}

// Recipients returns the configured recipient list.
func (s *NotificationService) Recipients() []string {
	return s.recipients
}

// DispatchTest sends the minimal canned message used to verify channel
// configuration without a full payload.
func (s *NotificationService) DispatchTest(ctx context.Context) (string, error) {
	subject, body := mail.RenderTest()
	return s.mailer.Send(ctx, &mail.Message{
		From:    s.from,
		To:      s.recipients,
		Subject: subject,
		HTML:    body,
	})
}
