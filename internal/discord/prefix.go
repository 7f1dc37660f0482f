package discord

import (
	"log"

	"herald/internal/dispatch"
	"herald/internal/storage"
)

// GuildPrefixes answers prefix lookups from storage, falling back to the
// configured default when a guild has no override (and for DMs).
type GuildPrefixes struct {
	Storage *storage.Storage
	Default string
}

// PrefixFor implements dispatch.PrefixProvider.
func (p *GuildPrefixes) PrefixFor(ctx dispatch.Context) string {
	guildID := ctx.GuildID()
	if guildID == "" || p.Storage == nil {
		return p.Default
	}
	prefix, err := p.Storage.GetPrefix(guildID)
	if err != nil {
		log.Println("[WARN] Failed to read guild prefix:", err)
		return p.Default
	}
	if prefix == "" {
		return p.Default
	}
	return prefix
}
