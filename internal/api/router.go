// Package api exposes the dashboard REST surface over chi.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mailflow/internal/dispatch"
	"github.com/dmitrymomot/mailflow/internal/store"
)

type handlers struct {
	store    store.Store
	dispatch *dispatch.Service
	log      *slog.Logger
}

// NewRouter builds the HTTP routing table. All dashboard endpoints live
// under /api; records are owned by the seeded default user until a real
// auth layer exists.
func NewRouter(st store.Store, d *dispatch.Service, log *slog.Logger) http.Handler {
	h := &handlers{store: st, dispatch: d, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", h.listTemplates)
		r.Post("/templates", h.createTemplate)
		r.Put("/templates/{id}", h.updateTemplate)
		r.Delete("/templates/{id}", h.deleteTemplate)

		r.Post("/emails/send", h.sendEmail)
		r.Get("/emails", h.listEmails)

		r.Get("/analytics", h.getAnalytics)
		r.Get("/activity", h.getActivity)

		r.Get("/contacts", h.listContacts)
		r.Post("/contacts", h.createContact)
		r.Put("/contacts/{id}", h.updateContact)
		r.Delete("/contacts/{id}", h.deleteContact)
	})

	return r
}

// requestLogger emits one structured log line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
