package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/evoting-backend/internal/domain"
)

// LogSender writes notifications to the log instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log.With("component", "notify")}
}

func (s *LogSender) Send(ctx context.Context, msg domain.Notification) error {
	body, err := Render(msg)
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "notification",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("template", msg.Template),
		slog.String("body", body),
	)
	return nil
}
