package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"herald/internal/dispatch"
)

// Help lists the registered commands grouped by category.
func Help(registry *dispatch.Registry) *dispatch.Command {
	return &dispatch.Command{
		Label:       "help",
		Aliases:     []string{"h", "commands"},
		Description: "Show a list of available commands.",
		Category:    "Information",
		NoTyping:    true,
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, _ *dispatch.ArgumentMap) (dispatch.Reply, error) {
			return dispatch.Embed{Embed: &discordgo.MessageEmbed{
				Title:       "📖 Available Commands",
				Description: buildHelpMessage(registry),
				Color:       embedColor,
			}}, nil
		}),
	}
}

func buildHelpMessage(registry *dispatch.Registry) string {
	categoryMap := make(map[string][]*dispatch.Command)
	for _, cmd := range registry.All() {
		categoryMap[cmd.Category] = append(categoryMap[cmd.Category], cmd)
	}

	categories := make([]string, 0, len(categoryMap))
	for cat := range categoryMap {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, cat := range categories {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		cmdList := categoryMap[cat]
		sort.Slice(cmdList, func(i, j int) bool {
			return cmdList[i].Label < cmdList[j].Label
		})
		for _, cmd := range cmdList {
			sb.WriteString(fmt.Sprintf("`%s` - %s", cmd.Usage(), cmd.Description))
			if len(cmd.Aliases) > 0 {
				sb.WriteString(fmt.Sprintf(" (aliases: %s)", strings.Join(cmd.Aliases, ", ")))
			}
			sb.WriteString("\n")
			for _, sub := range cmd.SubCommands {
				sb.WriteString(fmt.Sprintf("`%s %s` - %s\n", cmd.Label, sub.Usage(), sub.Description))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
