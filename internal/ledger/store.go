package ledger

import (
	"sort"
	"sync"

	"github.com/Goptar/gopgang-api/internal/domain"
)

// DefaultTopLimit is used whenever a caller asks for a ranked view without a
// usable limit.
const DefaultTopLimit = 10

// Store is the in-memory donation ledger: one Participant per id with
// cumulative raised/donated totals. A single RWMutex guards the map, so an
// Apply is visible to readers either fully or not at all. State lives for the
// process lifetime only.
type Store struct {
	mu           sync.RWMutex
	participants map[string]*domain.Participant
	order        []string // ids in first-seen order, for deterministic ties
}

// NewStore creates an empty ledger.
func NewStore() *Store {
	return &Store{
		participants: make(map[string]*domain.Participant),
	}
}

// Apply folds one donation event into the ledger: the donor's TotalDonated
// and the recipient's TotalRaised both grow by the event amount, and display
// names are refreshed when the event carries one. Invalid events return a
// domain.ErrInvalidEvent wrapped error and leave the ledger untouched.
func (s *Store) Apply(ev domain.DonationEvent) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	donor := s.upsert(ev.DonorID, ev.DonorName)
	donor.TotalDonated += ev.Amount

	recipient := s.upsert(ev.RecipientID, ev.RecipientName)
	recipient.TotalRaised += ev.Amount

	return nil
}

// upsert returns the participant for id, creating it on first reference.
// Caller must hold the write lock.
func (s *Store) upsert(id, name string) *domain.Participant {
	p, ok := s.participants[id]
	if !ok {
		p = &domain.Participant{ID: id}
		s.participants[id] = p
		s.order = append(s.order, id)
	}
	if name != "" {
		p.DisplayName = name
	}
	return p
}

// TopByRaised returns up to limit participants sorted by TotalRaised
// descending. Ties keep first-seen order.
func (s *Store) TopByRaised(limit int) []domain.Participant {
	return s.top(limit, func(p *domain.Participant) int64 { return p.TotalRaised })
}

// TopByDonated returns up to limit participants sorted by TotalDonated
// descending. Ties keep first-seen order.
func (s *Store) TopByDonated(limit int) []domain.Participant {
	return s.top(limit, func(p *domain.Participant) int64 { return p.TotalDonated })
}

// Len reports how many participants the ledger tracks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.participants)
}

func (s *Store) top(limit int, metric func(*domain.Participant) int64) []domain.Participant {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	s.mu.RLock()
	snapshot := make([]domain.Participant, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, *s.participants[id])
	}
	s.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return metric(&snapshot[i]) > metric(&snapshot[j])
	})

	if len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}
	return snapshot
}
