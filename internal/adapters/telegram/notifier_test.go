package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moedinha/moedinha_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type fakeSender struct {
	to   tele.Recipient
	what interface{}
	opts []interface{}
	err  error
	n    int
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.n++
	f.to, f.what, f.opts = to, what, opts
	return &tele.Message{}, f.err
}

func testAlert() domain.Alert {
	return domain.Alert{
		AlertID:  "a1",
		Month:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Code:     domain.AlertBucketOver,
		Severity: domain.SeverityCritical,
		Message:  "Você estourou <Lazer>",
	}
}

func TestNotifyAlert_SendsEscapedHTML(t *testing.T) {
	fake := &fakeSender{}
	n := newNotifier(fake, -100123, WithAppURL("https://app.moedinha.com/"))

	require.NoError(t, n.NotifyAlert(context.Background(), testAlert()))

	assert.Equal(t, 1, fake.n)
	assert.Equal(t, tele.ChatID(-100123), fake.to)
	text, ok := fake.what.(string)
	require.True(t, ok)
	assert.Contains(t, text, "🚨 <b>03/2024</b>")
	assert.Contains(t, text, "Você estourou &lt;Lazer&gt;")
	assert.Contains(t, text, "https://app.moedinha.com/alerts?month=2024-03")
	assert.Contains(t, fake.opts, tele.ModeHTML)
}

func TestNotifyAlert_WrapsSendError(t *testing.T) {
	fake := &fakeSender{err: errors.New("chat not found")}
	n := newNotifier(fake, 42)

	err := n.NotifyAlert(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket_over")
}

func TestNotifyAlert_NilNotifierIsNoop(t *testing.T) {
	var n *Notifier
	assert.NoError(t, n.NotifyAlert(context.Background(), testAlert()))
}

func TestNotifyAlert_CancelledContext(t *testing.T) {
	fake := &fakeSender{}
	n := newNotifier(fake, 42)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.NotifyAlert(ctx, testAlert()), context.Canceled)
	assert.Zero(t, fake.n)
}

func TestNewNotifier_DisabledWithoutCredentials(t *testing.T) {
	n, err := NewNotifier("", 42)
	assert.NoError(t, err)
	assert.Nil(t, n)

	n, err = NewNotifier("token", 0)
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestSeverityIcon(t *testing.T) {
	assert.Equal(t, "⚠️", severityIcon(domain.SeverityWarning))
	assert.Equal(t, "ℹ️", severityIcon(domain.SeverityInfo))
}
