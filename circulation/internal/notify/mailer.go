package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer performs the final delivery of a consumed notification.
type Mailer interface {
	Deliver(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg SMTPConfig) *smtpMailer {
	return &smtpMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *smtpMailer) Deliver(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.Recipients) == 0 {
		return nil
	}
	var a smtp.Auth
	if m.cfg.Username != "" {
		a = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return m.send(net.JoinHostPort(m.cfg.Host, m.cfg.Port), a, m.cfg.From, msg.Recipients, m.compose(msg))
}

func (m *smtpMailer) compose(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(m.cfg.From))
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(strings.Join(msg.Recipients, ", ")))
	fmt.Fprintf(&b, "Subject: %s\r\n", headerValue(msg.Subject))
	fmt.Fprintf(&b, "Message-ID: <%s@circulation>\r\n", headerValue(msg.ID))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// headerValue keeps a header on one line; a CR or LF would start a new header.
func headerValue(v string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, v)
}

type logMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *logMailer {
	return &logMailer{log: log.Named("mailer")}
}

func (m *logMailer) Deliver(_ context.Context, msg Message) error {
	m.log.Info("deliver",
		zap.String("id", msg.ID),
		zap.String("subject", msg.Subject),
		zap.Strings("recipients", msg.Recipients),
	)
	return nil
}
