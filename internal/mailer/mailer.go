// Package mailer sends transactional email through a pluggable provider.
package mailer

import (
	"context"
	"log/slog"

	"hoopline/internal/middleware"
)

// Provider defines the interface for email sending implementations.
type Provider interface {
	// Send sends an email with the given parameters.
	Send(ctx context.Context, to, subject, body string) error
}

// Mailer sends application emails using a pluggable provider. Delivery
// failures are logged and counted but never surfaced to callers; email is
// best-effort and must not fail the request that triggered it.
type Mailer struct {
	provider Provider
	logger   *slog.Logger
	siteURL  string
}

// New creates a Mailer with the given provider.
func New(provider Provider, logger *slog.Logger, siteURL string) *Mailer {
	return &Mailer{
		provider: provider,
		logger:   logger,
		siteURL:  siteURL,
	}
}

func (m *Mailer) deliver(ctx context.Context, kind, to, subject, body string) {
	if err := m.provider.Send(ctx, to, subject, body); err != nil {
		middleware.EmailDeliveries.WithLabelValues(kind, "error").Inc()
		m.logger.Error("Email delivery failed",
			slog.String("kind", kind),
			slog.String("to", to),
			slog.String("error", err.Error()),
		)
		return
	}
	middleware.EmailDeliveries.WithLabelValues(kind, "ok").Inc()
	m.logger.Info("Email sent",
		slog.String("kind", kind),
		slog.String("to", to),
	)
}

// SendNewsletterWelcome greets a new newsletter subscriber.
func (m *Mailer) SendNewsletterWelcome(ctx context.Context, to string) {
	m.deliver(ctx, "newsletter_welcome", to, welcomeSubject, welcomeBody(m.siteURL, to))
}

// SendNewsletterGoodbye confirms an unsubscribe.
func (m *Mailer) SendNewsletterGoodbye(ctx context.Context, to string) {
	m.deliver(ctx, "newsletter_goodbye", to, goodbyeSubject, goodbyeBody(m.siteURL, to))
}

// SendAccountWelcome greets a newly registered user.
func (m *Mailer) SendAccountWelcome(ctx context.Context, to, username string) {
	m.deliver(ctx, "account_welcome", to, accountWelcomeSubject, accountWelcomeBody(m.siteURL, username))
}
