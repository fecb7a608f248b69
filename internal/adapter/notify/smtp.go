package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/heartmarshall/evoting-backend/internal/config"
	"github.com/heartmarshall/evoting-backend/internal/domain"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends plain-text mail through a relay.
type SMTPSender struct {
	addr     string
	from     string
	auth     smtp.Auth
	log      *slog.Logger
	sendMail sendMailFunc
}

// NewSMTPSender builds a sender for cfg. Auth is PLAIN when a username is set.
func NewSMTPSender(cfg config.MailConfig, log *slog.Logger) *SMTPSender {
	s := &SMTPSender{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:     cfg.From,
		log:      log.With("component", "notify"),
		sendMail: smtp.SendMail,
	}
	if cfg.Username != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return s
}

// Send renders msg and hands it to the relay. net/smtp has no context
// support, so ctx is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := Render(msg)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	if err := s.sendMail(s.addr, s.auth, s.from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("notify: send %s: %w", msg.Template, err)
	}
	s.log.DebugContext(ctx, "mail sent", slog.String("template", msg.Template))
	return nil
}
