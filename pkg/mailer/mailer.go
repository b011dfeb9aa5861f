// Package mailer delivers notification e-mail about new form submissions.
package mailer

import (
	"context"

	"go.uber.org/zap"
)

// Drivers selectable through NOTIFY_DRIVER.
const (
	DriverLog      = "log"
	DriverSendgrid = "sendgrid"
)

// Message is a plain-text notification.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	ReplyTo string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender constructs a LogSender.
func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("notification email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.Text)),
	)
	return nil
}
