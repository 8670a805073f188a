package mailer

import "log/slog"

// NewFromConfig selects the delivery mechanism once at startup: Postmark
// when a server token is configured, otherwise the simulated sender. The
// fallback is logged as a warning, not an error - running without
// credentials is a supported development mode.
func NewFromConfig(cfg Config, log *slog.Logger) (Sender, error) {
	if cfg.PostmarkServerToken != "" {
		return NewPostmarkSender(cfg)
	}

	log.Warn("POSTMARK_SERVER_TOKEN not found, email sending will be simulated")
	return NewSimulatedSender(), nil
}
