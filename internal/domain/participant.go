package domain

import "fmt"

// Participant is one identity tracked by the ledger, with cumulative totals
// for both roles. Totals only ever grow; a participant is created on the
// first event that references its id as donor or recipient.
type Participant struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	TotalRaised  int64  `json:"totalRaised"`
	TotalDonated int64  `json:"totalDonated"`
}

// DonationEvent is one in-game transfer from a donor to a recipient. It is
// transient input: the ledger folds it into the two participants and drops it.
// Donor and recipient may be the same id.
type DonationEvent struct {
	DonorID       string
	DonorName     string
	RecipientID   string
	RecipientName string
	Amount        int64
}

// Validate reports why an event cannot be applied. A zero amount counts as
// missing, matching the game server's payload semantics.
func (e DonationEvent) Validate() error {
	if e.DonorID == "" {
		return fmt.Errorf("%w: donor id is required", ErrInvalidEvent)
	}
	if e.RecipientID == "" {
		return fmt.Errorf("%w: recipient id is required", ErrInvalidEvent)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidEvent)
	}
	return nil
}
