package domain

import "errors"

// ErrInvalidEvent marks a donation event the ledger refuses to apply. The
// ingest boundary translates it into a 400 response.
var ErrInvalidEvent = errors.New("invalid donation event")
