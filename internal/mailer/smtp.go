package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"hoopline/internal/config"
)

// SMTPProvider sends mail through a plain SMTP relay.
type SMTPProvider struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

// NewSMTPProvider builds a provider from the SMTP_* config values.
func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
	}
}

// Send delivers a single plain-text message.
func (p *SMTPProvider) Send(_ context.Context, to, subject, body string) error {
	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", p.from, to, subject, body)

	var auth smtp.Auth
	if p.user != "" {
		auth = smtp.PlainAuth("", p.user, p.password, p.host)
	}
	addr := fmt.Sprintf("%s:%s", p.host, p.port)

	if err := smtp.SendMail(addr, auth, p.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
