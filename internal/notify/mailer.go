package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/tabeebak/clinic-scheduler/internal/config"
)

// Sender delivers a one-time code to an account's email address.
type Sender interface {
	SendOTP(ctx context.Context, recipient, code string) error
}

type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: auth,
		from: cfg.MailFrom,
	}
}

func (s *SMTPSender) SendOTP(ctx context.Context, recipient, code string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset code\r\n"+
			"Content-Type: text/plain; charset=utf-8\r\n\r\n"+
			"Your verification code is %s. It expires in 10 minutes.\r\n",
		s.from, recipient, code,
	)
	return smtp.SendMail(s.addr, s.auth, s.from, []string{recipient}, []byte(msg))
}
