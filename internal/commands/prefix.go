package commands

import (
	"fmt"

	"herald/internal/dispatch"
	"herald/internal/storage"
)

// Prefix manages the guild's invocation prefix. The bare command and the
// `show` sub-command display it; `set` stores an override.
func Prefix(store *storage.Storage, fallback string) *dispatch.Command {
	show := dispatch.HandlerFunc(func(ctx dispatch.Context, _ *dispatch.ArgumentMap) (dispatch.Reply, error) {
		current := fallback
		if ctx.GuildID() != "" {
			if p, err := store.GetPrefix(ctx.GuildID()); err == nil && p != "" {
				current = p
			}
		}
		return dispatch.Text(fmt.Sprintf("Current prefix: `%s`", current)), nil
	})

	return &dispatch.Command{
		Label:       "prefix",
		Description: "Show or change this server's command prefix.",
		Category:    "Settings",
		NoTyping:    true,
		Handler:     show,
		SubCommands: []*dispatch.Command{
			{
				Label:       "show",
				Description: "Show the current prefix.",
				NoTyping:    true,
				Handler:     show,
			},
			{
				Label:       "set",
				Description: "Set a new prefix for this server.",
				NoTyping:    true,
				Arguments: []dispatch.Argument{
					{Key: "value", Type: "string", Required: true},
				},
				UserRequires: []dispatch.Capability{dispatch.CapManageChannels},
				Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, args *dispatch.ArgumentMap) (dispatch.Reply, error) {
					if ctx.GuildID() == "" {
						return dispatch.Text("Prefix overrides only apply inside a server."), nil
					}
					value := args.String("value")
					if err := store.SetPrefix(ctx.GuildID(), value); err != nil {
						return nil, fmt.Errorf("failed to store prefix: %w", err)
					}
					return dispatch.Text(fmt.Sprintf("Prefix set to `%s`", value)), nil
				}),
			},
		},
	}
}
