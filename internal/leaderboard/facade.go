// Package leaderboard exposes the ledger's ranked reads in one place so the
// HTTP API and the chat bot share identical semantics.
package leaderboard

import (
	"github.com/Goptar/gopgang-api/internal/domain"
	"github.com/Goptar/gopgang-api/internal/ledger"
)

// Facade is the read-only view over the ledger used by every transport.
type Facade struct {
	store *ledger.Store
}

// NewFacade wraps a ledger store.
func NewFacade(store *ledger.Store) *Facade {
	return &Facade{store: store}
}

// TopRaised returns up to limit participants by raised total. Non-positive
// limits fall back to the default of 10; a bad limit is never an error.
func (f *Facade) TopRaised(limit int) []domain.Participant {
	return f.store.TopByRaised(normalizeLimit(limit))
}

// TopDonated returns up to limit participants by donated total.
func (f *Facade) TopDonated(limit int) []domain.Participant {
	return f.store.TopByDonated(normalizeLimit(limit))
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return ledger.DefaultTopLimit
	}
	return limit
}
