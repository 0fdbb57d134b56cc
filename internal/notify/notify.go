// Package notify sends best-effort customer notifications. Failures
// are surfaced as errors for logging but must never affect order state.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Dispatcher delivers a message. Fire-and-forget semantics: callers
// log the error and move on.
type Dispatcher interface {
	Notify(ctx context.Context, msg Message) error
}

// Mailer sends messages over SMTP with plain auth.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(host, port, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *Mailer) Notify(ctx context.Context, msg Message) error {
	if msg.Recipient == "" {
		return fmt.Errorf("notify: empty recipient")
	}

	payload := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + msg.Recipient + "\r\n" +
			"Subject: " + msg.Subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
			"\r\n" +
			msg.Body + "\r\n",
	)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.from, []string{msg.Recipient}, payload); err != nil {
		return fmt.Errorf("notify: send mail to %s: %w", msg.Recipient, err)
	}
	return nil
}

// Noop discards messages. Used when SMTP is not configured.
type Noop struct{}

func (Noop) Notify(ctx context.Context, msg Message) error {
	return nil
}
