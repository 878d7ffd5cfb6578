package bot

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Goptar/gopgang-api/internal/domain"
	"github.com/Goptar/gopgang-api/internal/leaderboard"
	"github.com/Goptar/gopgang-api/internal/ledger"
)

func message(content string, fromBot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		Content: content,
		Author:  &discordgo.User{ID: "u1", Bot: fromBot},
	}}
}

func newTestBot(t *testing.T, seeded bool) *Bot {
	t.Helper()
	store := ledger.NewStore()
	if seeded {
		require.NoError(t, store.Apply(domain.DonationEvent{
			DonorID: "A", DonorName: "Alice", RecipientID: "B", RecipientName: "Bob", Amount: 100,
		}))
		require.NoError(t, store.Apply(domain.DonationEvent{
			DonorID: "B", DonorName: "Bob", RecipientID: "A", RecipientName: "Alice", Amount: 30,
		}))
	}
	return &Bot{board: leaderboard.NewFacade(store), logger: zerolog.Nop()}
}

func TestCommandReplyTopRaised(t *testing.T) {
	b := newTestBot(t, true)

	reply := b.commandReply(message("!topraised", false))
	require.True(t, strings.HasPrefix(reply, "**Top Raised:**\n"))
	require.Contains(t, reply, "1. Bob (B) – 100 R$")
	require.Contains(t, reply, "2. Alice (A) – 30 R$")
}

func TestCommandReplyTopDonated(t *testing.T) {
	b := newTestBot(t, true)

	reply := b.commandReply(message("  !topdonated  ", false))
	require.True(t, strings.HasPrefix(reply, "**Top Donated:**\n"))
	require.Contains(t, reply, "1. Alice (A) – 100 R$")
}

func TestCommandReplyNoData(t *testing.T) {
	b := newTestBot(t, false)

	require.Equal(t, leaderboard.NoDataMessage, b.commandReply(message("!topraised", false)))
	require.Equal(t, leaderboard.NoDataMessage, b.commandReply(message("!topdonated", false)))
}

func TestCommandReplyIgnoresBotsAndChatter(t *testing.T) {
	b := newTestBot(t, true)

	require.Empty(t, b.commandReply(message("!topraised", true)))
	require.Empty(t, b.commandReply(message("hello there", false)))
	require.Empty(t, b.commandReply(message("top raised please", false)))
}
