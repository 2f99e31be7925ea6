package notifier

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers HTML mail over SMTP with STARTTLS.
// The zero host/port default to Gmail, which expects an app password.
type EmailSender struct {
	Host string
	Port int
}

// NewEmailSender creates a sender with Gmail SMTP defaults.
func NewEmailSender() *EmailSender {
	return &EmailSender{Host: "smtp.gmail.com", Port: 587}
}

// Send mails htmlBody to all recipients in a single message.
func (e *EmailSender) Send(subject, htmlBody string, recipients []string, senderEmail, appPassword string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}
	if senderEmail == "" || appPassword == "" {
		return fmt.Errorf("sender credentials not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(e.Host, e.Port, senderEmail, appPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
