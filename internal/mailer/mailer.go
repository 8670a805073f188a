// Package mailer abstracts the outbound email delivery mechanism behind a
// single Sender interface with two implementations: a Postmark-backed
// client and a simulated sender for credential-less environments. The
// implementation is selected once at startup, not per call.
package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers a single email. One attempt, one outcome, no retries.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams carries one outbound message.
type SendParams struct {
	To       string // Recipient email address
	ToName   string // Optional recipient display name
	Subject  string
	HTMLBody string
	TextBody string // Optional plain-text alternative
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the params describe a deliverable message.
func (p SendParams) Validate() error {
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.HTMLBody) == "" {
		return fmt.Errorf("%w: HTMLBody is required", ErrInvalidParams)
	}
	return nil
}
