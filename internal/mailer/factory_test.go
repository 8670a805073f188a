package mailer_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailflow/internal/mailer"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("simulation mode without server token", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		sender, err := mailer.NewFromConfig(mailer.Config{SenderEmail: "noreply@mailflow.app"}, log)
		require.NoError(t, err)
		assert.IsType(t, &mailer.SimulatedSender{}, sender)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "simulated")
	})

	t.Run("postmark when token configured", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.DiscardHandler)
		sender, err := mailer.NewFromConfig(mailer.Config{
			PostmarkServerToken:  "server-token",
			PostmarkAccountToken: "account-token",
			SenderEmail:          "noreply@mailflow.app",
		}, log)
		require.NoError(t, err)
		require.NotNil(t, sender)
		_, simulated := sender.(*mailer.SimulatedSender)
		assert.False(t, simulated, "configured token must select the real provider")
	})

	t.Run("postmark misconfiguration surfaces", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.DiscardHandler)
		sender, err := mailer.NewFromConfig(mailer.Config{
			PostmarkServerToken: "server-token",
			SenderEmail:         "noreply@mailflow.app",
		}, log)
		assert.Nil(t, sender)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})
}
