// Package mailer delivers contact-form submissions over SMTP.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/Zachkp/devfolio/internal/config"
)

// Mailer sends contact-form mail with the configured SMTP account.
type Mailer struct {
	cfg config.SMTP
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendContact forwards a contact-form submission to the site owner.
// Returns an error when SMTP credentials are missing so the form can show
// a failure message instead of silently dropping the submission.
func (m *Mailer) SendContact(name, email, message string) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if m.cfg.To == "" {
		return fmt.Errorf("TO_EMAIL not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Printf("Contact email sent from %s (%s)", name, email)
	return nil
}
