// File: neuroglove/services/report/mailer.go
package report

import (
	"fmt"

	"neuroglove/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers a plain-text message to the configured support recipient.
type Mailer interface {
	Send(subject, body string) error
}

// SMTPMailer sends through the configured SMTP relay with STARTTLS.
type SMTPMailer struct {
	From      string
	Password  string
	Recipient string
	Host      string
	Port      int
}

// NewSMTPMailer builds a mailer from config. Returns a nil Mailer when the
// mail credentials are absent; callers treat a nil mailer as "mail
// disabled". The interface return keeps that nil a nil interface, so the
// caller's nil check holds.
func NewSMTPMailer(cfg config.Config) Mailer {
	if cfg.GmailAddress == "" || cfg.GmailAppPassword == "" {
		return nil
	}
	return &SMTPMailer{
		From:      cfg.GmailAddress,
		Password:  cfg.GmailAppPassword,
		Recipient: cfg.RecipientEmail,
		Host:      cfg.SMTPServer,
		Port:      cfg.SMTPPort,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.Recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.From, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
