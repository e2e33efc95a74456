// Package telegram pushes emitted alerts to a Telegram chat.
package telegram

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	tele "gopkg.in/telebot.v3"
)

// sender is the subset of *tele.Bot the notifier needs.
type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type Notifier struct {
	bot    sender
	chat   tele.ChatID
	appURL string
}

var _ portssvc.AlertNotifier = (*Notifier)(nil)

type Option func(*Notifier)

// WithAppURL adds a link to the web app below each message.
func WithAppURL(url string) Option {
	return func(n *Notifier) { n.appURL = strings.TrimRight(url, "/") }
}

// NewNotifier builds an offline bot (no polling, no getMe call) that only sends.
// It returns nil, nil when the token or chat id is missing.
func NewNotifier(token string, chatID int64, opts ...Option) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return newNotifier(bot, chatID, opts...), nil
}

func newNotifier(bot sender, chatID int64, opts ...Option) *Notifier {
	n := &Notifier{bot: bot, chat: tele.ChatID(chatID)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyAlert sends the alert message. A nil notifier is a no-op.
func (n *Notifier) NotifyAlert(ctx context.Context, alert domain.Alert) error {
	if n == nil || n.bot == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Send(n.chat, n.render(alert), tele.ModeHTML, tele.NoPreview); err != nil {
		return fmt.Errorf("sending telegram alert %s: %w", alert.Code, err)
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Alert pushed to telegram",
		slog.String("alert_id", alert.AlertID), slog.String("code", string(alert.Code)))
	return nil
}

func (n *Notifier) render(alert domain.Alert) string {
	var sb strings.Builder
	sb.WriteString(severityIcon(alert.Severity))
	sb.WriteString(" <b>")
	sb.WriteString(html.EscapeString(alert.Month.Format("01/2006")))
	sb.WriteString("</b>\n\n")
	sb.WriteString(html.EscapeString(alert.Message))
	if n.appURL != "" {
		sb.WriteString("\n\n")
		sb.WriteString(html.EscapeString(n.appURL + "/alerts?month=" + alert.Month.Format("2006-01")))
	}
	return sb.String()
}

func severityIcon(s domain.AlertSeverity) string {
	switch s {
	case domain.SeverityCritical:
		return "🚨"
	case domain.SeverityWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}
