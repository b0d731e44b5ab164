package email

import (
	"fmt"

	"contrata_backend/internal/config"

	"gopkg.in/gomail.v2"
)

type Sender struct {
	cfg *config.Config
}

// NewSender returns nil when SMTP is not configured, so callers can
// skip sending entirely.
func NewSender(cfg *config.Config) *Sender {
	if cfg.Email.SMTPHost == "" {
		return nil
	}
	return &Sender{cfg: cfg}
}

func (e *Sender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(e.cfg.Email.FromEmail, e.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (e *Sender) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Bem-vindo ao Contrata AI! Sua conta foi criada com sucesso.</p>",
		name,
	)
	return e.Send(to, "Bem-vindo ao Contrata AI", body)
}
