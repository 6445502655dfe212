//go:build unit

package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"find-my-space/internal/pkg/config"
	"find-my-space/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_WithoutHostIsNop(t *testing.T) {
	m := New(config.SMTPConfig{}, discard())

	_, ok := m.(NopMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), commands.Mail{To: "a@example.com"}))
}

func TestSMTPMailer_Send(t *testing.T) {
	t.Run("headers are set", func(t *testing.T) {
		d := &recordingDialer{}
		m := &SMTPMailer{dialer: d, from: "no-reply@example.com", logger: discard()}

		err := m.Send(context.Background(), commands.Mail{To: "p@example.com", Subject: "Payout released", HTMLBody: "<p>ok</p>"})

		require.NoError(t, err)
		require.Len(t, d.sent, 1)
		assert.Equal(t, []string{"p@example.com"}, d.sent[0].GetHeader("To"))
		assert.Equal(t, []string{"Payout released"}, d.sent[0].GetHeader("Subject"))
	})

	t.Run("dial failure is returned", func(t *testing.T) {
		m := &SMTPMailer{dialer: &recordingDialer{err: errors.New("refused")}, from: "x", logger: discard()}
		require.Error(t, m.Send(context.Background(), commands.Mail{To: "p@example.com"}))
	})

	t.Run("cancelled context skips dialing", func(t *testing.T) {
		d := &recordingDialer{}
		m := &SMTPMailer{dialer: d, from: "x", logger: discard()}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, m.Send(ctx, commands.Mail{To: "p@example.com"}), context.Canceled)
		assert.Empty(t, d.sent)
	})
}
