package mailer

import (
	"context"
	"log/slog"
	"sync"
)

// SentMessage records a message captured by the mock provider.
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// MockProvider logs messages instead of sending them. It is used in
// development when no SMTP host is configured, and by tests to assert on
// what would have been sent.
type MockProvider struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []SentMessage
}

// NewMockProvider creates a new mock email provider.
func NewMockProvider(logger *slog.Logger) *MockProvider {
	return &MockProvider{logger: logger}
}

// Send logs the email instead of sending it.
func (m *MockProvider) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentMessage{To: to, Subject: subject, Body: body})
	m.mu.Unlock()

	m.logger.Info("MOCK EMAIL",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_length", len(body)),
	)
	return nil
}

// Sent returns a copy of the captured messages.
func (m *MockProvider) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
