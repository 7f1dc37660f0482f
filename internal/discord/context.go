package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"herald/internal/config"
	"herald/internal/dispatch"
)

// messageContext implements dispatch.Context over one MessageCreate event.
type messageContext struct {
	s   *discordgo.Session
	m   *discordgo.MessageCreate
	cfg *config.Config
}

func newMessageContext(s *discordgo.Session, m *discordgo.MessageCreate, cfg *config.Config) *messageContext {
	return &messageContext{s: s, m: m, cfg: cfg}
}

// Session exposes the underlying discordgo session for commands that need
// raw platform access (ban, purge).
func (c *messageContext) Session() *discordgo.Session { return c.s }

func (c *messageContext) RawMessage() string { return c.m.Content }

func (c *messageContext) SelfID() string { return c.s.State.User.ID }

func (c *messageContext) GuildID() string { return c.m.GuildID }

func (c *messageContext) ChannelID() string { return c.m.ChannelID }

func (c *messageContext) AuthorID() string { return c.m.Author.ID }

func (c *messageContext) AuthorName() string { return c.m.Author.Username }

func (c *messageContext) CallerHasCapability(cap dispatch.Capability) bool {
	if config.IsDeveloper(c.cfg, c.m.Author.ID) {
		return true
	}
	return hasChannelCapability(c.s, c.m.Author.ID, c.m.ChannelID, cap)
}

func (c *messageContext) SystemHasCapability(cap dispatch.Capability) bool {
	return hasChannelCapability(c.s, c.s.State.User.ID, c.m.ChannelID, cap)
}

func (c *messageContext) SendText(text string) error {
	_, err := c.s.ChannelMessageSend(c.m.ChannelID, text)
	return err
}

func (c *messageContext) SendEmbed(embed *discordgo.MessageEmbed) error {
	_, err := c.s.ChannelMessageSendEmbed(c.m.ChannelID, embed)
	return err
}

func (c *messageContext) SendTyping() {
	if err := c.s.ChannelTyping(c.m.ChannelID); err != nil {
		log.Println("[WARN] Failed to send typing indicator:", err)
	}
}

func (c *messageContext) DeleteTriggeringMessage() {
	if err := c.s.ChannelMessageDelete(c.m.ChannelID, c.m.ID); err != nil {
		log.Println("[WARN] Failed to delete triggering message:", err)
	}
}
