package mailer

import "errors"

var (
	// ErrInvalidConfig indicates the sender cannot be constructed from the
	// provided configuration.
	ErrInvalidConfig = errors.New("mailer: invalid config")
	// ErrInvalidParams indicates the send parameters are not deliverable.
	ErrInvalidParams = errors.New("mailer: invalid send params")
	// ErrSendFailed indicates the provider rejected or failed the delivery.
	ErrSendFailed = errors.New("failed to send email")
	// ErrSimulatedFailure is the failure outcome injected by the simulated
	// sender. The message is stored verbatim on the sent email record.
	ErrSimulatedFailure = errors.New("Simulated email delivery failure")
)
