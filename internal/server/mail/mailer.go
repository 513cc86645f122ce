// Package mail renders case notifications and delivers them through the
// external transactional-email channel.
package mail

import "context"

// Message is one rendered outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer is the delivery channel, consumed as a black box: it accepts a
// rendered message and returns the channel's message identifier or a
// structured error. No retry or queuing happens behind this interface.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (string, error)
}
