package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/zspldev/Webapp-NotesMate/internal/config"
)

// Mailer is the outbound email capability: send(to, message) -> error.
// OTP issuance treats every failure here as non-fatal.
type Mailer interface {
	Send(to, subject, body string) error
	Configured() bool
}

// SMTPMailer delivers mail over authenticated SMTP with STARTTLS.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Configured reports whether credentials are present. An unconfigured mailer
// still satisfies the interface; Send just fails fast.
func (m *SMTPMailer) Configured() bool {
	return m.cfg.From != "" && m.cfg.Password != ""
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("email service not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.From, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
