package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is the map-backed Store implementation. Slices of IDs preserve
// insertion order so list results are deterministic; a RWMutex guards the
// maps because independent requests may overlap while a send attempt waits
// on the delivery gateway.
type Memory struct {
	mu sync.RWMutex

	users         map[string]User
	templates     map[string]Template
	templateOrder []string
	contacts      map[string]Contact
	contactOrder  []string
	sentEmails    map[string]SentEmail
	emailOrder    []string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]User),
		templates:  make(map[string]Template),
		contacts:   make(map[string]Contact),
		sentEmails: make(map[string]SentEmail),
	}
}

func (m *Memory) User(id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return u, nil
}

func (m *Memory) CreateUser(u User) User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.users[u.ID] = u
	return u
}

func (m *Memory) Templates(userID string) []Template {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Template, 0, len(m.templateOrder))
	for _, id := range m.templateOrder {
		if t := m.templates[id]; t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

func (m *Memory) Template(id string) (Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: template %s", ErrNotFound, id)
	}
	return t, nil
}

func (m *Memory) CreateTemplate(t Template) Template {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Variables == nil {
		t.Variables = []string{}
	}
	t.UsageCount = 0

	m.templates[t.ID] = t
	m.templateOrder = append(m.templateOrder, t.ID)
	return t
}

func (m *Memory) UpdateTemplate(id string, update TemplateUpdate) (Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: template %s", ErrNotFound, id)
	}

	if update.Name != nil {
		t.Name = *update.Name
	}
	if update.Type != nil {
		t.Type = *update.Type
	}
	if update.Subject != nil {
		t.Subject = *update.Subject
	}
	if update.HTMLContent != nil {
		t.HTMLContent = *update.HTMLContent
	}
	if update.TextContent != nil {
		t.TextContent = update.TextContent
	}
	if update.Variables != nil {
		t.Variables = update.Variables
	}
	if update.IsActive != nil {
		t.IsActive = *update.IsActive
	}

	m.templates[id] = t
	return t, nil
}

func (m *Memory) DeleteTemplate(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.templates[id]; !ok {
		return fmt.Errorf("%w: template %s", ErrNotFound, id)
	}
	delete(m.templates, id)
	m.templateOrder = slices.DeleteFunc(m.templateOrder, func(v string) bool { return v == id })
	return nil
}

// IncrementTemplateUsage bumps the usage counter. A missing template is
// ignored: template resolution is decoupled from sending.
func (m *Memory) IncrementTemplateUsage(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.templates[id]
	if !ok {
		return
	}
	t.UsageCount++
	m.templates[id] = t
}

func (m *Memory) Contacts(userID string) []Contact {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Contact, 0, len(m.contactOrder))
	for _, id := range m.contactOrder {
		if c := m.contacts[id]; c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

func (m *Memory) Contact(id string) (Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.contacts[id]
	if !ok {
		return Contact{}, fmt.Errorf("%w: contact %s", ErrNotFound, id)
	}
	return c, nil
}

func (m *Memory) CreateContact(c Contact) Contact {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	m.contacts[c.ID] = c
	m.contactOrder = append(m.contactOrder, c.ID)
	return c
}

func (m *Memory) UpdateContact(id string, update ContactUpdate) (Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contacts[id]
	if !ok {
		return Contact{}, fmt.Errorf("%w: contact %s", ErrNotFound, id)
	}

	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.Name != nil {
		c.Name = update.Name
	}
	if update.Tags != nil {
		c.Tags = update.Tags
	}

	m.contacts[id] = c
	return c, nil
}

func (m *Memory) DeleteContact(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contacts[id]; !ok {
		return fmt.Errorf("%w: contact %s", ErrNotFound, id)
	}
	delete(m.contacts, id)
	m.contactOrder = slices.DeleteFunc(m.contactOrder, func(v string) bool { return v == id })
	return nil
}

// SentEmails returns the user's send attempts, newest first.
func (m *Memory) SentEmails(userID string) []SentEmail {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]SentEmail, 0, len(m.emailOrder))
	for i := len(m.emailOrder) - 1; i >= 0; i-- {
		if e := m.sentEmails[m.emailOrder[i]]; e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (m *Memory) SentEmail(id string) (SentEmail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sentEmails[id]
	if !ok {
		return SentEmail{}, fmt.Errorf("%w: sent email %s", ErrNotFound, id)
	}
	return e, nil
}

func (m *Memory) CreateSentEmail(e SentEmail) SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.SentAt.IsZero() {
		e.SentAt = time.Now()
	}
	e.Status = StatusPending
	e.DeliveredAt = nil
	e.OpenedAt = nil
	e.ErrorMessage = nil

	m.sentEmails[e.ID] = e
	m.emailOrder = append(m.emailOrder, e.ID)
	return e
}

// legalTransitions is the sent email status transition table. The opened
// transition is reachable only from delivered; nothing in the write path
// fires it today, it exists for a future webhook integration.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusDelivered, StatusFailed},
	StatusDelivered: {StatusOpened},
}

func (m *Memory) UpdateSentEmailStatus(id string, status Status, at time.Time, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sentEmails[id]
	if !ok {
		return fmt.Errorf("%w: sent email %s", ErrNotFound, id)
	}

	if !slices.Contains(legalTransitions[e.Status], status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.Status, status)
	}

	e.Status = status
	switch status {
	case StatusDelivered:
		e.DeliveredAt = &at
	case StatusOpened:
		e.OpenedAt = &at
	case StatusFailed:
		if errorMessage != "" {
			e.ErrorMessage = &errorMessage
		}
	}

	m.sentEmails[id] = e
	return nil
}
