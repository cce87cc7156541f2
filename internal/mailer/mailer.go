package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/Mishael-2584/odel-portal-api/internal/config"
)

// Mailer sends plain-text email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New returns nil when SMTP is not configured; the notify dispatcher treats
// a nil sender as "log and drop".
func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
