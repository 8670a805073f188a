// Package dispatch coordinates a single send attempt: persist a pending
// record, bump template usage, invoke the delivery gateway, settle the
// record's terminal status.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailflow/internal/mailer"
	"github.com/dmitrymomot/mailflow/internal/store"
	"github.com/dmitrymomot/mailflow/pkg/logger"
	"github.com/dmitrymomot/mailflow/pkg/validator"
)

// ErrDeliveryFailed indicates the gateway reported a failed outcome. The
// sent email record carries the reason; the attempt is terminal, nothing
// is retried.
var ErrDeliveryFailed = errors.New("email delivery failed")

// Storage is the slice of the store the orchestrator needs.
type Storage interface {
	CreateSentEmail(e store.SentEmail) store.SentEmail
	SentEmail(id string) (store.SentEmail, error)
	UpdateSentEmailStatus(id string, status store.Status, at time.Time, errorMessage string) error
	IncrementTemplateUsage(id string)
}

// SendRequest describes one send attempt. Subject and content arrive
// already resolved: template substitution happens at the API boundary.
type SendRequest struct {
	TemplateID     string
	RecipientEmail string
	RecipientName  string
	Subject        string
	HTMLContent    string
	TextContent    string
	UserID         string
}

// Validate checks the request payload. Failures short-circuit the send
// with nothing persisted.
func (r SendRequest) Validate() error {
	return validator.Apply(
		validator.ValidEmail("recipientEmail", r.RecipientEmail),
		validator.Required("subject", r.Subject),
		validator.Required("htmlContent", r.HTMLContent),
	)
}

// Service is the send orchestrator.
type Service struct {
	storage Storage
	sender  mailer.Sender
	log     *slog.Logger
	now     func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a send orchestrator.
func New(storage Storage, sender mailer.Sender, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		sender:  sender,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send runs one attempt end to end and returns the settled record. A
// delivery failure is reported as an error wrapping ErrDeliveryFailed with
// the record already transitioned to failed; the caller decides how to
// surface it.
func (s *Service) Send(ctx context.Context, req SendRequest) (store.SentEmail, error) {
	if err := req.Validate(); err != nil {
		return store.SentEmail{}, err
	}

	record := store.SentEmail{
		RecipientEmail: req.RecipientEmail,
		Subject:        req.Subject,
		HTMLContent:    req.HTMLContent,
		SentAt:         s.now(),
		UserID:         req.UserID,
	}
	if req.TemplateID != "" {
		record.TemplateID = &req.TemplateID
	}
	if req.RecipientName != "" {
		record.RecipientName = &req.RecipientName
	}
	if req.TextContent != "" {
		record.TextContent = &req.TextContent
	}
	record = s.storage.CreateSentEmail(record)

	// Best-effort: a missing template must not fail the send.
	if req.TemplateID != "" {
		s.storage.IncrementTemplateUsage(req.TemplateID)
	}

	sendErr := s.sender.Send(ctx, mailer.SendParams{
		To:       record.RecipientEmail,
		ToName:   req.RecipientName,
		Subject:  record.Subject,
		HTMLBody: record.HTMLContent,
		TextBody: req.TextContent,
	})

	if sendErr != nil {
		reason := sendErr.Error()
		if err := s.storage.UpdateSentEmailStatus(record.ID, store.StatusFailed, s.now(), reason); err != nil {
			s.log.ErrorContext(ctx, "failed to mark email as failed",
				slog.String("email_id", record.ID), logger.Error(err))
		}
		s.log.ErrorContext(ctx, "email delivery failed",
			slog.String("email_id", record.ID),
			slog.String("recipient", record.RecipientEmail),
			logger.Error(sendErr))

		record, _ = s.refreshed(record)
		return record, errors.Join(ErrDeliveryFailed, sendErr)
	}

	if err := s.storage.UpdateSentEmailStatus(record.ID, store.StatusDelivered, s.now(), ""); err != nil {
		s.log.ErrorContext(ctx, "failed to mark email as delivered",
			slog.String("email_id", record.ID), logger.Error(err))
		return record, err
	}

	s.log.InfoContext(ctx, "email delivered",
		slog.String("email_id", record.ID),
		slog.String("recipient", record.RecipientEmail))

	record, _ = s.refreshed(record)
	return record, nil
}

// refreshed re-reads the record so the caller sees the settled status;
// falls back to the stale copy if the read fails.
func (s *Service) refreshed(record store.SentEmail) (store.SentEmail, error) {
	fresh, err := s.storage.SentEmail(record.ID)
	if err != nil {
		return record, err
	}
	return fresh, nil
}
