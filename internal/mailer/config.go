package mailer

// Config holds delivery gateway configuration. The Postmark tokens are
// optional: when the server token is absent the gateway runs in simulation
// mode. SenderEmail establishes the From identity for all outbound mail.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@mailflow.app"`
	SenderName           string `env:"SENDER_NAME" envDefault:"MailFlow"`
}
