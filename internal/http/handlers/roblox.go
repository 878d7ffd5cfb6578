package handlers

import (
	"errors"
	"net/http"

	"github.com/Goptar/gopgang-api/internal/providers/roblox"
)

// UniverseID serves GET /universe-id?placeId=P, proxying the Roblox
// place → universe lookup.
func (a *App) UniverseID(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("placeId")
	if placeID == "" {
		a.error(w, http.StatusBadRequest, "placeId query parameter is required")
		return
	}

	universe, err := a.Roblox.UniverseID(r.Context(), placeID)
	if err != nil {
		a.robloxError(w, "universe", err)
		return
	}
	a.json(w, http.StatusOK, universe)
}

// GamePasses serves GET /universe-game-passes, proxying the game-pass listing
// with the upstream response returned untouched.
func (a *App) GamePasses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	universeID := q.Get("universeId")
	if universeID == "" {
		a.error(w, http.StatusBadRequest, "universeId query parameter is required")
		return
	}

	raw, err := a.Roblox.GamePasses(r.Context(), roblox.GamePassQuery{
		UniverseID: universeID,
		PassView:   q.Get("passView"),
		PageSize:   q.Get("pageSize"),
		PageToken:  q.Get("pageToken"),
	})
	if err != nil {
		a.robloxError(w, "gamepasses", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// robloxError maps client failures onto the proxy contract: upstream
// non-success passes its status and body through, anything else is a plain
// server error.
func (a *App) robloxError(w http.ResponseWriter, lookup string, err error) {
	a.Metrics.UpstreamErrors.WithLabelValues(lookup).Inc()

	var apiErr *roblox.APIError
	if errors.As(err, &apiErr) {
		a.json(w, apiErr.StatusCode, map[string]any{
			"error":  "Roblox API error",
			"status": apiErr.StatusCode,
			"body":   apiErr.Body,
		})
		return
	}

	a.Logger.Error().Err(err).Str("lookup", lookup).Msg("roblox proxy failure")
	a.error(w, http.StatusInternalServerError, "Server error")
}
