package handlers

import (
	"net/http"
	"strconv"

	"github.com/Goptar/gopgang-api/internal/domain"
)

// TopRaised serves GET /api/top-raised?limit=N.
func (a *App) TopRaised(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, nonNil(a.Board.TopRaised(limitParam(r))))
}

// TopDonated serves GET /api/top-donated?limit=N.
func (a *App) TopDonated(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, nonNil(a.Board.TopDonated(limitParam(r))))
}

// limitParam reads ?limit=; anything unparsable coerces to the default
// instead of failing the request.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// nonNil keeps the empty leaderboard rendering as [] rather than null.
func nonNil(list []domain.Participant) []domain.Participant {
	if list == nil {
		return []domain.Participant{}
	}
	return list
}
