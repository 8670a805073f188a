package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailflow/internal/store"
	"github.com/dmitrymomot/mailflow/pkg/httpx"
	"github.com/dmitrymomot/mailflow/pkg/validator"
)

type createContactRequest struct {
	Email string   `json:"email"`
	Name  *string  `json:"name"`
	Tags  []string `json:"tags"`
}

type updateContactRequest struct {
	Email *string  `json:"email"`
	Name  *string  `json:"name"`
	Tags  []string `json:"tags"`
}

func (h *handlers) listContacts(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Contacts(store.DefaultUserID))
}

func (h *handlers) createContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	if err := validator.Apply(
		validator.Required("email", req.Email),
		validator.ValidEmail("email", req.Email),
	); err != nil {
		httpx.Error(w, err)
		return
	}

	created := h.store.CreateContact(store.Contact{
		Email:  req.Email,
		Name:   req.Name,
		Tags:   req.Tags,
		UserID: store.DefaultUserID,
	})

	httpx.JSON(w, http.StatusCreated, created)
}

func (h *handlers) updateContact(w http.ResponseWriter, r *http.Request) {
	var req updateContactRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	if req.Email != nil {
		if err := validator.Apply(validator.ValidEmail("email", *req.Email)); err != nil {
			httpx.Error(w, err)
			return
		}
	}

	updated, err := h.store.UpdateContact(chi.URLParam(r, "id"), store.ContactUpdate{
		Email: req.Email,
		Name:  req.Name,
		Tags:  req.Tags,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

func (h *handlers) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteContact(chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.NoContent(w)
}
