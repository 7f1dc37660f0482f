package commands

import (
	"fmt"

	"herald/internal/dispatch"
)

const purgeBatchLimit = 100 // Discord caps bulk deletion per request

// Purge bulk-deletes the last N messages in the channel.
func Purge() *dispatch.Command {
	return &dispatch.Command{
		Label:       "purge",
		Aliases:     []string{"clear"},
		Description: "Delete the last N messages in this channel.",
		Category:    "Moderation",
		Arguments: []dispatch.Argument{
			{Key: "count", Type: "number", Required: true},
		},
		BotRequires:  []dispatch.Capability{dispatch.CapManageMessages},
		UserRequires: []dispatch.Capability{dispatch.CapManageMessages},
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, args *dispatch.ArgumentMap) (dispatch.Reply, error) {
			ds, ok := ctx.(discordSession)
			if !ok {
				return nil, fmt.Errorf("purge is only available on Discord")
			}

			count := args.Int("count")
			if count < 1 || count > purgeBatchLimit {
				return dispatch.Text(fmt.Sprintf("Count must be between 1 and %d.", purgeBatchLimit)), nil
			}

			s := ds.Session()
			msgs, err := s.ChannelMessages(ctx.ChannelID(), count, "", "", "")
			if err != nil {
				return nil, fmt.Errorf("failed to fetch messages: %w", err)
			}
			ids := make([]string, 0, len(msgs))
			for _, m := range msgs {
				ids = append(ids, m.ID)
			}
			if err := s.ChannelMessagesBulkDelete(ctx.ChannelID(), ids); err != nil {
				return nil, fmt.Errorf("failed to delete messages: %w", err)
			}
			return dispatch.Text(fmt.Sprintf("🧹 Deleted %d message(s).", len(ids))), nil
		}),
	}
}
