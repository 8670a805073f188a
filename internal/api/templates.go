package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailflow/internal/store"
	"github.com/dmitrymomot/mailflow/pkg/httpx"
	"github.com/dmitrymomot/mailflow/pkg/validator"
)

type createTemplateRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"htmlContent"`
	TextContent *string  `json:"textContent"`
	Variables   []string `json:"variables"`
	IsActive    *bool    `json:"isActive"`
}

type updateTemplateRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Subject     *string  `json:"subject"`
	HTMLContent *string  `json:"htmlContent"`
	TextContent *string  `json:"textContent"`
	Variables   []string `json:"variables"`
	IsActive    *bool    `json:"isActive"`
}

func (h *handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Templates(store.DefaultUserID))
}

func (h *handlers) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	if err := validator.Apply(
		validator.Required("name", req.Name),
		validator.Required("type", req.Type),
		validator.Required("subject", req.Subject),
		validator.Required("htmlContent", req.HTMLContent),
	); err != nil {
		httpx.Error(w, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created := h.store.CreateTemplate(store.Template{
		Name:        req.Name,
		Type:        req.Type,
		Subject:     req.Subject,
		HTMLContent: req.HTMLContent,
		TextContent: req.TextContent,
		Variables:   req.Variables,
		IsActive:    isActive,
		UserID:      store.DefaultUserID,
	})

	httpx.JSON(w, http.StatusCreated, created)
}

func (h *handlers) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var req updateTemplateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	updated, err := h.store.UpdateTemplate(chi.URLParam(r, "id"), store.TemplateUpdate{
		Name:        req.Name,
		Type:        req.Type,
		Subject:     req.Subject,
		HTMLContent: req.HTMLContent,
		TextContent: req.TextContent,
		Variables:   req.Variables,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

func (h *handlers) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTemplate(chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.NoContent(w)
}

// respondError maps store errors onto the HTTP taxonomy.
func (h *handlers) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.Error(w, httpx.ErrNotFound)
		return
	}
	httpx.Error(w, err)
}
