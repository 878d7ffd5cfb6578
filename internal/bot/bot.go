// Package bot runs the Discord side of the leaderboard: two text commands
// that answer with the same ranked views the HTTP API serves.
package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Goptar/gopgang-api/internal/infra"
	"github.com/Goptar/gopgang-api/internal/leaderboard"
)

const (
	cmdTopRaised  = "!topraised"
	cmdTopDonated = "!topdonated"
)

// Bot owns the Discord session and answers leaderboard commands in the
// channel they arrive in.
type Bot struct {
	session *discordgo.Session
	board   *leaderboard.Facade
	logger  infra.Logger
}

// New builds a bot over the given token. The session is not opened yet;
// call Start.
func New(token string, board *leaderboard.Facade, logger infra.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("bot: create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{session: session, board: board, logger: logger}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("bot: open session: %w", err)
	}
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info().Str("user", r.User.String()).Msg("discord bot logged in")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	reply := b.commandReply(m)
	if reply == "" {
		return
	}
	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		b.logger.Error().Err(err).Str("channel_id", m.ChannelID).Msg("failed to send reply")
	}
}

// commandReply maps a message onto its reply text; empty means no reply.
// Messages from other bots are ignored.
func (b *Bot) commandReply(m *discordgo.MessageCreate) string {
	if m.Author == nil || m.Author.Bot {
		return ""
	}

	content := strings.TrimSpace(m.Content)
	switch {
	case strings.HasPrefix(content, cmdTopRaised):
		return leaderboard.FormatTop(leaderboard.MetricRaised, b.board.TopRaised(0))
	case strings.HasPrefix(content, cmdTopDonated):
		return leaderboard.FormatTop(leaderboard.MetricDonated, b.board.TopDonated(0))
	}
	return ""
}
