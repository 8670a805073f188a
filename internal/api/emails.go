package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/mailflow/internal/dispatch"
	"github.com/dmitrymomot/mailflow/internal/render"
	"github.com/dmitrymomot/mailflow/internal/store"
	"github.com/dmitrymomot/mailflow/pkg/httpx"
)

type sendEmailRequest struct {
	RecipientEmail string            `json:"recipientEmail"`
	RecipientName  string            `json:"recipientName"`
	TemplateID     string            `json:"templateId"`
	Subject        string            `json:"subject"`
	HTMLContent    string            `json:"htmlContent"`
	TextContent    string            `json:"textContent"`
	Variables      map[string]string `json:"variables"`
}

type sendEmailResponse struct {
	Success bool   `json:"success"`
	EmailID string `json:"emailId"`
}

func (h *handlers) sendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	// Template substitution happens here, at the API boundary; the
	// orchestrator only ever sees resolved content. Explicit subject or
	// body in the request wins over the template.
	if req.TemplateID != "" && (req.Subject == "" || req.HTMLContent == "") {
		if tpl, err := h.store.Template(req.TemplateID); err == nil {
			if req.Subject == "" {
				req.Subject = render.Render(tpl.Subject, req.Variables)
			}
			if req.HTMLContent == "" {
				req.HTMLContent = render.Render(tpl.HTMLContent, req.Variables)
			}
			if req.TextContent == "" && tpl.TextContent != nil {
				req.TextContent = render.Render(*tpl.TextContent, req.Variables)
			}
		}
	}

	record, err := h.dispatch.Send(r.Context(), dispatch.SendRequest{
		TemplateID:     req.TemplateID,
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
		Subject:        req.Subject,
		HTMLContent:    req.HTMLContent,
		TextContent:    req.TextContent,
		UserID:         store.DefaultUserID,
	})
	if err != nil {
		if errors.Is(err, dispatch.ErrDeliveryFailed) {
			// The attempt is recorded as failed; surface the gateway
			// reason as a server-side failure.
			message := "Failed to send email"
			if record.ErrorMessage != nil {
				message = *record.ErrorMessage
			}
			httpx.JSON(w, http.StatusInternalServerError, httpx.ErrorResponse{Message: message})
			return
		}
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, sendEmailResponse{Success: true, EmailID: record.ID})
}

func (h *handlers) listEmails(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.SentEmails(store.DefaultUserID))
}
