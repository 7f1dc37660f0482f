package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"herald/internal/dispatch"
	"herald/internal/storage"
)

// History shows the most recent command invocations logged for the guild.
func History(store *storage.Storage) *dispatch.Command {
	return &dispatch.Command{
		Label:       "history",
		Aliases:     []string{"log"},
		Description: "Show recently used commands in this server.",
		Category:    "Settings",
		NoTyping:    true,
		UserRequires: []dispatch.Capability{
			dispatch.CapManageMessages,
		},
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, _ *dispatch.ArgumentMap) (dispatch.Reply, error) {
			if ctx.GuildID() == "" {
				return dispatch.Text("Command history is only kept for servers."), nil
			}
			records, err := store.GetCommandHistory(ctx.GuildID())
			if err != nil {
				return nil, fmt.Errorf("failed to read command history: %w", err)
			}
			if len(records) == 0 {
				return dispatch.Text("No commands logged yet."), nil
			}

			var sb strings.Builder
			for i := len(records) - 1; i >= 0; i-- {
				r := records[i]
				sb.WriteString(fmt.Sprintf("`%s` %s by **%s** in <#%s>\n",
					r.Datetime.Format("2006-01-02 15:04"), r.Command, r.Username, r.ChannelID))
			}
			return dispatch.Embed{Embed: &discordgo.MessageEmbed{
				Title:       "🗒️ Recent commands",
				Description: sb.String(),
				Color:       embedColor,
			}}, nil
		}),
	}
}
