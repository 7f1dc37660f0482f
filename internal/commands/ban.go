package commands

import (
	"fmt"

	"herald/internal/dispatch"
)

// Ban bans a member. Takes a mention or a raw user ID, plus an optional
// quoted reason.
func Ban() *dispatch.Command {
	return &dispatch.Command{
		Label:       "ban",
		Aliases:     []string{"b"},
		Description: "Ban a member from the server.",
		Category:    "Moderation",
		Arguments: []dispatch.Argument{
			{Key: "user", Type: "user", Required: true},
			{Key: "reason", Type: "string", Required: false},
		},
		BotRequires:  []dispatch.Capability{dispatch.CapBanMembers},
		UserRequires: []dispatch.Capability{dispatch.CapBanMembers},
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, args *dispatch.ArgumentMap) (dispatch.Reply, error) {
			ds, ok := ctx.(discordSession)
			if !ok {
				return nil, fmt.Errorf("ban is only available on Discord")
			}

			userID, _ := args.Get("user").(string)
			reason := args.String("reason")

			if err := ds.Session().GuildBanCreateWithReason(ctx.GuildID(), userID, reason, 0); err != nil {
				return nil, fmt.Errorf("failed to ban <@%s>: %w", userID, err)
			}
			if reason != "" {
				return dispatch.Text(fmt.Sprintf("🔨 Banned <@%s>: %s", userID, reason)), nil
			}
			return dispatch.Text(fmt.Sprintf("🔨 Banned <@%s>", userID)), nil
		}),
	}
}
