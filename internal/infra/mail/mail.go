package mail

import (
	"context"
	"crypto/tls"
	"log/slog"

	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/commands"

	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers mail through one SMTP relay.
type SMTPMailer struct {
	dialer dialer
	from   string
	logger *slog.Logger
}

// New returns a NopMailer when no SMTP host is configured.
func New(cfg config.SMTPConfig, logger *slog.Logger) commands.Mailer {
	if cfg.Host == "" {
		logger.Info("SMTP not configured, mails are only logged")
		return NopMailer{logger: logger}
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
	return &SMTPMailer{dialer: d, from: cfg.From, logger: logger}
}

func (m *SMTPMailer) Send(ctx context.Context, mail commands.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTMLBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "send mail")
	}
	m.logger.Debug("mail sent", "to", mail.To, "subject", mail.Subject)
	return nil
}

type NopMailer struct {
	logger *slog.Logger
}

func (n NopMailer) Send(_ context.Context, mail commands.Mail) error {
	n.logger.Info("mail skipped", "to", mail.To, "subject", mail.Subject)
	return nil
}
