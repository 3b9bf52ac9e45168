package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"go-contact-backend/config"
)

// RenderedEmail is a fully prepared message: subject, recipients and HTML
// body. Each instance is independent and carries everything a send needs.
type RenderedEmail struct {
	Subject    string
	Recipients []string
	HTMLBody   string
}

// Sender transmits a prepared message over SMTP
type Sender interface {
	Send(ctx context.Context, msg RenderedEmail) error
}

// SMTPSender sends mail with a dial-per-send client: a connection is opened
// and closed for every message, there is no persistent SMTP session.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender builds the SMTP client from configuration: PLAIN auth when
// credentials are enabled, implicit TLS or mandatory STARTTLS per the
// mutually exclusive flags, opportunistic STARTTLS when both are off.
func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.MailPort),
	}

	if cfg.UseCredentials {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.MailUsername),
			mail.WithPassword(cfg.MailPassword),
		)
	}

	switch {
	case cfg.MailSSLTLS:
		opts = append(opts, mail.WithSSL())
	case cfg.MailSTARTTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if !cfg.ValidateCerts {
		opts = append(opts, mail.WithTLSConfig(&tls.Config{InsecureSkipVerify: true}))
	}

	client, err := mail.NewClient(cfg.MailServer, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.MailFrom}, nil
}

// Send transmits one message. Any failure is returned to the caller; the
// service layer decides what to do with it (log and swallow).
func (s *SMTPSender) Send(ctx context.Context, msg RenderedEmail) error {
	if len(msg.Recipients) == 0 {
		return fmt.Errorf("send email: no recipients")
	}

	// Strip CR/LF from the subject to prevent header injection
	subject := strings.NewReplacer("\r", "", "\n", "").Replace(msg.Subject)

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("send email: set from: %w", err)
	}
	if err := m.To(msg.Recipients...); err != nil {
		return fmt.Errorf("send email: set recipients: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
