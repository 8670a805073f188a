package api

import (
	"net/http"

	"github.com/dmitrymomot/mailflow/internal/analytics"
	"github.com/dmitrymomot/mailflow/internal/store"
	"github.com/dmitrymomot/mailflow/pkg/httpx"
)

// activityFeedLimit caps the merged recent activity feed.
const activityFeedLimit = 10

func (h *handlers) getAnalytics(w http.ResponseWriter, r *http.Request) {
	report := analytics.Compute(
		h.store.SentEmails(store.DefaultUserID),
		h.store.Templates(store.DefaultUserID),
	)
	httpx.JSON(w, http.StatusOK, report)
}

func (h *handlers) getActivity(w http.ResponseWriter, r *http.Request) {
	feed := analytics.Feed(
		h.store.SentEmails(store.DefaultUserID),
		h.store.Templates(store.DefaultUserID),
		activityFeedLimit,
	)
	httpx.JSON(w, http.StatusOK, feed)
}
