package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"herald/internal/config"
	"herald/internal/dispatch"
	"herald/internal/storage"
)

// Bot is a Discord bot: a session plus the dispatcher that does the actual
// command routing.
type Bot struct {
	dg         *discordgo.Session
	cfg        *config.Config
	storage    *storage.Storage
	dispatcher *dispatch.Dispatcher
}

// NewBot wires a bot around an already assembled dispatcher.
func NewBot(cfg *config.Config, store *storage.Storage, dispatcher *dispatch.Dispatcher) *Bot {
	return &Bot{cfg: cfg, storage: store, dispatcher: dispatcher}
}

// Run opens the Discord session and blocks until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}
	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

// onMessageCreate feeds every incoming message through the dispatcher. The
// dispatcher itself decides whether the message is a command; ordinary
// chatter costs one prefix check and nothing else.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}
	b.dispatcher.Handle(newMessageContext(s, m, b.cfg))
}
