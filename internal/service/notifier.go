package service

import (
	"gopkg.in/gomail.v2"

	"github.com/ShopThryfted/Thryfted/internal/config"
)

// Notifier sends a single plain-text email.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// MailNotifier delivers through an SMTP relay.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailNotifier(cfg config.MailConfig) *MailNotifier {
	return &MailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.Username,
	}
}

func (n *MailNotifier) Send(recipient, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
