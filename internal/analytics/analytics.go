// Package analytics derives delivery statistics and the recent activity
// feed from current store contents. Everything here is a pure read-time
// computation, never cached.
package analytics

import (
	"math"

	"github.com/dmitrymomot/mailflow/internal/store"
)

// Stats is the dashboard headline numbers.
type Stats struct {
	EmailsSent      int     `json:"emailsSent"`
	DeliveryRate    float64 `json:"deliveryRate"`
	OpenRate        float64 `json:"openRate"`
	ActiveTemplates int     `json:"activeTemplates"`
}

// DeliveryStatus is the per-status breakdown of send attempts.
type DeliveryStatus struct {
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Pending   int `json:"pending"`
	Failed    int `json:"failed"`
}

// Report combines stats and delivery status for the analytics endpoint.
type Report struct {
	Stats          Stats          `json:"stats"`
	DeliveryStatus DeliveryStatus `json:"deliveryStatus"`
}

// Compute builds the analytics report from the given records. Rates are
// percentages rounded to one decimal place; both are 0 when their
// denominator is 0.
func Compute(emails []store.SentEmail, templates []store.Template) Report {
	var delivered, opened, failed int
	for _, e := range emails {
		switch e.Status {
		case store.StatusDelivered:
			delivered++
		case store.StatusOpened:
			opened++
		case store.StatusFailed:
			failed++
		}
	}

	total := len(emails)

	var deliveryRate, openRate float64
	if total > 0 {
		deliveryRate = round1(float64(delivered+opened) / float64(total) * 100)
	}
	if delivered > 0 {
		openRate = round1(float64(opened) / float64(delivered) * 100)
	}

	var active int
	for _, t := range templates {
		if t.IsActive {
			active++
		}
	}

	return Report{
		Stats: Stats{
			EmailsSent:      total,
			DeliveryRate:    deliveryRate,
			OpenRate:        openRate,
			ActiveTemplates: active,
		},
		DeliveryStatus: DeliveryStatus{
			Delivered: delivered,
			Opened:    opened,
			Pending:   max(total-delivered-opened-failed, 0),
			Failed:    failed,
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
