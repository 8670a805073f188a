package store

import "time"

// TemplateStore manages reusable email templates.
type TemplateStore interface {
	Templates(userID string) []Template
	Template(id string) (Template, error)
	CreateTemplate(t Template) Template
	UpdateTemplate(id string, update TemplateUpdate) (Template, error)
	DeleteTemplate(id string) error
	IncrementTemplateUsage(id string)
}

// TemplateUpdate carries a partial template update; nil fields are
// left untouched.
type TemplateUpdate struct {
	Name        *string
	Type        *string
	Subject     *string
	HTMLContent *string
	TextContent *string
	Variables   []string
	IsActive    *bool
}

// ContactStore manages recipient records.
type ContactStore interface {
	Contacts(userID string) []Contact
	Contact(id string) (Contact, error)
	CreateContact(c Contact) Contact
	UpdateContact(id string, update ContactUpdate) (Contact, error)
	DeleteContact(id string) error
}

// ContactUpdate carries a partial contact update; nil fields are
// left untouched.
type ContactUpdate struct {
	Email *string
	Name  *string
	Tags  []string
}

// SentEmailStore manages send attempts. Records are created once and
// mutated only through guarded status transitions.
type SentEmailStore interface {
	SentEmails(userID string) []SentEmail
	SentEmail(id string) (SentEmail, error)
	CreateSentEmail(e SentEmail) SentEmail
	UpdateSentEmailStatus(id string, status Status, at time.Time, errorMessage string) error
}

// UserStore resolves account records.
type UserStore interface {
	User(id string) (User, error)
	CreateUser(u User) User
}

// Store aggregates all entity stores.
type Store interface {
	TemplateStore
	ContactStore
	SentEmailStore
	UserStore
}
