// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"herald/internal/commands"
	"herald/internal/config"
	"herald/internal/discord"
	"herald/internal/dispatch"
	"herald/internal/filter"
	"herald/internal/storage"
	v "herald/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	registry := dispatch.NewRegistry()
	registry.MustRegister(commands.Help(registry))
	registry.MustRegister(commands.Ping())
	registry.MustRegister(commands.About())
	registry.MustRegister(commands.Roll())
	registry.MustRegister(commands.Say())
	registry.MustRegister(commands.Ban())
	registry.MustRegister(commands.Purge())
	registry.MustRegister(commands.Prefix(store, cfg.CommandPrefix))
	registry.MustRegister(commands.History(store))

	dispatcher := dispatch.New(
		registry,
		dispatch.NewFactoryRegistry(),
		&discord.GuildPrefixes{Storage: store, Default: cfg.CommandPrefix},
		discord.Reporter{},
	)
	dispatcher.Use(filter.NewRateLimit(cfg.RatePerMinute, cfg.RateBurst))
	dispatcher.Use(&filter.CommandLog{Storage: store})

	bot := discord.NewBot(cfg, store, dispatcher)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
