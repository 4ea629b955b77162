package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Mailer delivers plain-text mail. Delivery is best effort; callers live in
// the async consumer, never on the request path.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *zap.Logger
}

func NewSMTPMailer(host, port, username, password, from string, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("mailer.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.smtp")
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &smtpMailer{
		addr:   host + ":" + port,
		from:   from,
		auth:   auth,
		logger: l,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.logger.Error("send mail failed", zap.String("to", to), zap.Error(err))
		return err
	}

	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

type noopMailer struct{}

// NewNoopMailer is used when SMTP is not configured; messages are dropped.
func NewNoopMailer() Mailer {
	return noopMailer{}
}

func (noopMailer) Send(context.Context, string, string, string) error {
	return nil
}
