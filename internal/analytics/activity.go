package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmitrymomot/mailflow/internal/store"
)

// Event is one entry of the recent activity feed.
type Event struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Type    string    `json:"type"`
}

const (
	EventTypeEmail    = "email"
	EventTypeTemplate = "template"
)

// Feed merges send attempts and template events into a single feed,
// newest first, capped at limit. Emails are expected newest-first as the
// store returns them.
func Feed(emails []store.SentEmail, templates []store.Template, limit int) []Event {
	events := make([]Event, 0, len(emails)+len(templates))

	for i, e := range emails {
		if i >= limit {
			break
		}
		verb := "Email sent to"
		if e.Status == store.StatusDelivered {
			verb = "Email delivered to"
		}
		events = append(events, Event{
			ID:      e.ID,
			Message: fmt.Sprintf("%s %s", verb, e.RecipientEmail),
			Time:    e.SentAt,
			Type:    EventTypeEmail,
		})
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	for _, t := range templates {
		verb := "updated"
		if t.CreatedAt.After(cutoff) {
			verb = "created"
		}
		events = append(events, Event{
			ID:      t.ID,
			Message: fmt.Sprintf("Template %q %s", t.Name, verb),
			Time:    t.CreatedAt,
			Type:    EventTypeTemplate,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.After(events[j].Time)
	})

	if len(events) > limit {
		events = events[:limit]
	}
	return events
}
