package repository

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/domain"
)

const (
	colorError   = 0xe74c3c
	colorSuccess = 0x2ecc71
)

// channelMessenger is the part of *discordgo.Session used by the sink
type channelMessenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordSink struct {
	session   channelMessenger
	channelId string
}

// NewDiscordSink posts notifications to a discord channel as a bot
func NewDiscordSink(botKey, channelId string) (domain.NotificationSink, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", botKey))
	if err != nil {
		return nil, err
	}
	return &discordSink{session: session, channelId: channelId}, nil
}

func (s *discordSink) Send(c bCtx.Ctx, n *domain.Notification) error {
	color := colorSuccess
	if n.Level == domain.NotificationLevelError {
		color = colorError
	}
	msg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", n.Source, n.Level),
		Description: n.Message,
		Color:       color,
		Timestamp:   n.CreatedAt.UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: n.Id,
		},
	}
	if _, err := s.session.ChannelMessageSendEmbed(s.channelId, msg); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}
