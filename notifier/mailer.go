package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/badapples/registry/models"
)

var log = slog.Default().With("system", "notifier")

// ErrNotConfigured is returned by a mailer that has nowhere to deliver to
var ErrNotConfigured = errors.New("mail delivery is not configured")

// Mailer delivers a notification to every recipient
type Mailer interface {
	Send(ctx context.Context, n models.Notification) error
}

// SMTPConfig holds outgoing mail server settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends notifications through an SMTP relay with STARTTLS and PLAIN auth
type SMTPMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a mailer for cfg
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Send delivers n. The context only bounds the wait before dialing.
func (m *SMTPMailer) Send(ctx context.Context, n models.Notification) error {
	if len(n.Recipients) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.From, n.Recipients, m.buildMessage(n)); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(n models.Notification) []byte {
	domain := "localhost"
	if at := strings.LastIndex(m.cfg.From, "@"); at >= 0 {
		domain = m.cfg.From[at+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(n.Recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", n.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.NewString(), domain)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.TrimSpace(n.Body), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// NoopMailer is used when no mail server is configured
type NoopMailer struct{}

// Send always reports ErrNotConfigured
func (NoopMailer) Send(ctx context.Context, n models.Notification) error {
	return ErrNotConfigured
}
