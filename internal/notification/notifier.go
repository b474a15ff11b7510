// Package notification provides best-effort email delivery for lifecycle
// events. Delivery never gates the state transition that triggered it.
package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result holds per-recipient delivery tallies for one send.
type Result struct {
	Sent   int
	Failed int
}

// Notifier delivers a message to a set of recipients and reports
// per-recipient tallies rather than an all-or-nothing result.
type Notifier interface {
	Send(ctx context.Context, recipients []string, subject, body string) (Result, error)
}

// NopNotifier logs notifications instead of delivering them. Used when SMTP
// is disabled and in tests.
type NopNotifier struct {
	logger *zap.SugaredLogger
}

// NewNop creates a notifier that only logs.
func NewNop(logger *zap.SugaredLogger) *NopNotifier {
	return &NopNotifier{logger: logger}
}

// Send logs the message and reports every recipient as sent.
func (n *NopNotifier) Send(ctx context.Context, recipients []string, subject, body string) (Result, error) {
	n.logger.Infow("notification suppressed (smtp disabled)",
		"recipients", len(recipients),
		"subject", subject,
	)
	return Result{Sent: len(recipients)}, nil
}

// SendAsync dispatches a notification in the background. The caller's state
// change has already committed; a delivery failure is logged, never returned.
func SendAsync(logger *zap.SugaredLogger, notifier Notifier, recipients []string, subject, body string) {
	if len(recipients) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := notifier.Send(ctx, recipients, subject, body)
		if err != nil {
			logger.Errorw("notification dispatch failed",
				"subject", subject,
				"recipients", len(recipients),
				"error", err,
			)
			return
		}
		if result.Failed > 0 {
			logger.Warnw("notification partially delivered",
				"subject", subject,
				"sent", result.Sent,
				"failed", result.Failed,
			)
		}
	}()
}
