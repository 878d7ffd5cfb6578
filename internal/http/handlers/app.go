package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Goptar/gopgang-api/internal/infra"
	"github.com/Goptar/gopgang-api/internal/leaderboard"
	"github.com/Goptar/gopgang-api/internal/ledger"
	"github.com/Goptar/gopgang-api/internal/providers/roblox"
)

// App bundles the handler dependencies: the ledger plus its read facade, the
// Roblox client, metrics, and the logger. One instance serves all routes.
type App struct {
	Ledger  *ledger.Store
	Board   *leaderboard.Facade
	Roblox  *roblox.Client
	Metrics *infra.Metrics
	Logger  infra.Logger
}

func NewApp(store *ledger.Store, board *leaderboard.Facade, rbx *roblox.Client, metrics *infra.Metrics, logger infra.Logger) *App {
	return &App{
		Ledger:  store,
		Board:   board,
		Roblox:  rbx,
		Metrics: metrics,
		Logger:  logger,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}
