package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	appConfig "github.com/shaundavidpr/hashitup-sub000/internal/config"
)

// SMTPNotifier delivers plain-text email over SMTP.
type SMTPNotifier struct {
	cfg    appConfig.SMTPConfig
	logger *zap.SugaredLogger

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP creates an SMTP-backed notifier.
func NewSMTP(cfg appConfig.SMTPConfig, logger *zap.SugaredLogger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:      cfg,
		logger:   logger,
		sendMail: smtp.SendMail,
	}
}

// Send delivers the message to each recipient individually and tallies
// per-recipient successes and failures.
func (n *SMTPNotifier) Send(ctx context.Context, recipients []string, subject, body string) (Result, error) {
	var result Result
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	for _, recipient := range recipients {
		if ctx.Err() != nil {
			result.Failed += len(recipients) - result.Sent - result.Failed
			return result, ctx.Err()
		}

		msg := n.buildMessage(recipient, subject, body)
		if err := n.sendMail(n.cfg.Addr(), auth, n.cfg.From, []string{recipient}, msg); err != nil {
			n.logger.Warnw("email delivery failed", "to", recipient, "subject", subject, "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	return result, nil
}

// buildMessage assembles an RFC 5322 plain-text message.
func (n *SMTPNotifier) buildMessage(to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", n.cfg.FromName, n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
