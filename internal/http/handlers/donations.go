package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Goptar/gopgang-api/internal/domain"
	"github.com/Goptar/gopgang-api/internal/middleware"
)

// scalar accepts a JSON string or number and normalizes it to a string. The
// game scripts send user and place ids as numbers while test harnesses and
// older clients send strings; both spell the same opaque id.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = scalar(n.String())
	return nil
}

// donationRequest mirrors the payload the game server posts.
type donationRequest struct {
	DonatorUserID   scalar `json:"donatorUserId"`
	DonatorName     string `json:"donatorName"`
	RecipientUserID scalar `json:"recipientUserId"`
	RecipientName   string `json:"recipientName"`
	Amount          int64  `json:"amount"`
	PlaceID         scalar `json:"placeId"`
	JobID           string `json:"jobId"`
	Timestamp       scalar `json:"timestamp"`
}

// IngestDonation is the authenticated write path: it validates the reported
// donation, applies it to the ledger, and emits the audit line. The route is
// wrapped by middleware.APIKey, so an unauthorized caller never reaches it.
func (a *App) IngestDonation(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Metrics.DonationsRejected.WithLabelValues("malformed").Inc()
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	ev := domain.DonationEvent{
		DonorID:       string(req.DonatorUserID),
		DonorName:     req.DonatorName,
		RecipientID:   string(req.RecipientUserID),
		RecipientName: req.RecipientName,
		Amount:        req.Amount,
	}

	if err := a.Ledger.Apply(ev); err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			a.Metrics.DonationsRejected.WithLabelValues("invalid_event").Inc()
			a.error(w, http.StatusBadRequest, "Missing fields")
			return
		}
		a.error(w, http.StatusInternalServerError, "Server error")
		return
	}

	a.Metrics.DonationsAccepted.Inc()
	a.Metrics.DonationAmount.Add(float64(ev.Amount))

	a.Logger.Info().
		Str("event_id", uuid.NewString()).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("donor_id", ev.DonorID).
		Str("donor_name", ev.DonorName).
		Str("recipient_id", ev.RecipientID).
		Str("recipient_name", ev.RecipientName).
		Int64("amount", ev.Amount).
		Str("place_id", string(req.PlaceID)).
		Str("job_id", req.JobID).
		Str("timestamp", string(req.Timestamp)).
		Msg("donation recorded")

	a.json(w, http.StatusOK, map[string]bool{"ok": true})
}
