// Package store defines the dashboard entities and the in-memory keyed
// stores that hold them. Everything lives behind small interfaces so a
// durable backend can be substituted without touching the callers.
package store

import "time"

// Status is the lifecycle state of a send attempt.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusOpened    Status = "opened"
	StatusFailed    Status = "failed"
)

// Template type constants. The type field is an open-ended string; these
// cover the built-in categories the dashboard knows about.
const (
	TemplateTypeReceipt      = "receipt"
	TemplateTypeConfirmation = "confirmation"
	TemplateTypeNotification = "notification"
	TemplateTypeWelcome      = "welcome"
)

// User owns templates, contacts and sent emails. There is no auth layer;
// a single seeded user owns everything.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Template is reusable email content with {{variable}} placeholders.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
	TextContent *string   `json:"textContent"`
	Variables   []string  `json:"variables"`
	IsActive    bool      `json:"isActive"`
	UsageCount  int       `json:"usageCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId"`
}

// Contact is a recipient record.
type Contact struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}

// SentEmail is one record per send attempt. The subject and body are
// captured as resolved at send time; the record is mutated only by status
// transitions and never deleted.
type SentEmail struct {
	ID             string     `json:"id"`
	TemplateID     *string    `json:"templateId"`
	RecipientEmail string     `json:"recipientEmail"`
	RecipientName  *string    `json:"recipientName"`
	Subject        string     `json:"subject"`
	HTMLContent    string     `json:"htmlContent"`
	TextContent    *string    `json:"textContent"`
	Status         Status     `json:"status"`
	SentAt         time.Time  `json:"sentAt"`
	DeliveredAt    *time.Time `json:"deliveredAt"`
	OpenedAt       *time.Time `json:"openedAt"`
	ErrorMessage   *string    `json:"errorMessage"`
	UserID         string     `json:"userId"`
}
