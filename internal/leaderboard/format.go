package leaderboard

import (
	"fmt"
	"strings"

	"github.com/Goptar/gopgang-api/internal/domain"
)

// NoDataMessage is the fixed chat reply when the ledger is still empty.
const NoDataMessage = "I don't have any data yet. Make a donation in-game first!"

// Metric selects which participant total a formatted list shows.
type Metric int

const (
	MetricRaised Metric = iota
	MetricDonated
)

func (m Metric) title() string {
	if m == MetricDonated {
		return "Top Donated"
	}
	return "Top Raised"
}

func (m Metric) amount(p domain.Participant) int64 {
	if m == MetricDonated {
		return p.TotalDonated
	}
	return p.TotalRaised
}

// FormatTop renders a ranked list as a single chat message: a bold header
// followed by one "N. name (id) – amount R$" line per participant. An empty
// list renders NoDataMessage instead.
func FormatTop(metric Metric, participants []domain.Participant) string {
	if len(participants) == 0 {
		return NoDataMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s:**\n", metric.title())
	for i, p := range participants {
		fmt.Fprintf(&b, "%d. %s (%s) – %d R$\n", i+1, p.DisplayName, p.ID, metric.amount(p))
	}
	return b.String()
}
