// cmd/cli/main.go
//
// A local console adapter: the same dispatcher the Discord bot uses, fed
// from stdin. Handy for poking at commands without a token.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/bwmarrin/discordgo"

	"herald/internal/commands"
	"herald/internal/config"
	"herald/internal/dispatch"
	"herald/internal/storage"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
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

	dispatcher := dispatch.New(
		registry,
		dispatch.NewFactoryRegistry(),
		dispatch.StaticPrefix(cfg.CommandPrefix),
		dispatch.ReporterFunc(func(_ dispatch.Context, cmd *dispatch.Command, _ []string, err error) {
			fmt.Printf("error: %s: %v\n", cmd.Label, err)
		}),
	)

	fmt.Printf("Herald console. Commands start with %q, Ctrl-D exits.\n", cfg.CommandPrefix)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		dispatcher.Handle(&consoleContext{line: scanner.Text()})
	}
	fmt.Println()
}

// consoleContext adapts one typed line to dispatch.Context. The local
// operator holds every capability; typing indicators and message deletion
// mean nothing on a terminal.
type consoleContext struct {
	line string
}

func (c *consoleContext) RawMessage() string { return c.line }
func (c *consoleContext) SelfID() string     { return "" }
func (c *consoleContext) GuildID() string    { return "" }
func (c *consoleContext) ChannelID() string  { return "console" }
func (c *consoleContext) AuthorID() string   { return "operator" }
func (c *consoleContext) AuthorName() string { return "operator" }

func (c *consoleContext) CallerHasCapability(dispatch.Capability) bool { return true }
func (c *consoleContext) SystemHasCapability(dispatch.Capability) bool { return false }

func (c *consoleContext) SendText(text string) error {
	fmt.Println(text)
	return nil
}

func (c *consoleContext) SendEmbed(embed *discordgo.MessageEmbed) error {
	if embed.Title != "" {
		fmt.Println(embed.Title)
	}
	fmt.Println(embed.Description)
	return nil
}

func (c *consoleContext) SendTyping()              {}
func (c *consoleContext) DeleteTriggeringMessage() {}
