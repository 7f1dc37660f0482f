package filter

import (
	"log"
	"time"

	"herald/internal/dispatch"
	"herald/internal/storage"
)

// CommandLog records every command call to the guild's history. It never
// cancels and never raises; a storage hiccup is worth a log line, not a
// failed dispatch.
type CommandLog struct {
	Storage *storage.Storage
}

// Filter implements dispatch.Filter.
func (c *CommandLog) Filter(call *dispatch.CommandCall, ctx dispatch.Context, _ *dispatch.ArgumentMap) error {
	if c.Storage == nil || ctx.GuildID() == "" {
		return nil
	}

	err := c.Storage.AddCommandHistory(ctx.GuildID(), storage.CommandHistoryRecord{
		ChannelID: ctx.ChannelID(),
		UserID:    ctx.AuthorID(),
		Username:  ctx.AuthorName(),
		Command:   call.Command.Label,
		Datetime:  time.Now(),
	})
	if err != nil {
		log.Println("[WARN] Failed to log command:", err)
	}
	return nil
}
