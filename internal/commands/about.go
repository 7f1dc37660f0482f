package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"herald/internal/dispatch"
	"herald/internal/version"
)

// About shows what this bot is and how it was built.
func About() *dispatch.Command {
	return &dispatch.Command{
		Label:       "about",
		Description: "Discover the origin of this bot.",
		Category:    "Information",
		NoTyping:    true,
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, _ *dispatch.ArgumentMap) (dispatch.Reply, error) {
			return dispatch.Embed{Embed: buildAboutMessage()}, nil
		}),
	}
}

func buildAboutMessage() *discordgo.MessageEmbed {
	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		}
	}

	goVer := "unknown"
	if version.GoVersion != "" {
		goVer = strings.TrimPrefix(version.GoVersion, "go")
	}

	return &discordgo.MessageEmbed{
		Description: fmt.Sprintf("ℹ️ About\n\n**%s** - %s", version.AppName, version.AppDescription),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Release", Value: fmt.Sprintf("%s (Go %s)", buildDate, goVer)},
		},
	}
}
