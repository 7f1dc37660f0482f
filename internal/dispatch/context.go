package dispatch

import "github.com/bwmarrin/discordgo"

// Reply is what a handler may hand back for rendering: Text for a plain
// message, Embed for a structured one, nil for nothing.
type Reply interface {
	reply()
}

// Text is a plain-text reply.
type Text string

func (Text) reply() {}

// Embed is a structured reply.
type Embed struct {
	Embed *discordgo.MessageEmbed
}

func (Embed) reply() {}

// Context is everything the dispatcher needs to know about the message that
// triggered it. Adapters (Discord, CLI) implement it; the core never touches
// the platform directly.
type Context interface {
	// RawMessage returns the untouched message text.
	RawMessage() string
	// SelfID identifies the bot account, for mention-prefix detection.
	SelfID() string

	GuildID() string
	ChannelID() string
	AuthorID() string
	AuthorName() string

	CallerHasCapability(cap Capability) bool
	SystemHasCapability(cap Capability) bool

	SendText(text string) error
	SendEmbed(embed *discordgo.MessageEmbed) error
	// SendTyping shows a typing indicator; best effort.
	SendTyping()
	// DeleteTriggeringMessage removes the message that started the dispatch;
	// best effort, failures stay with the adapter.
	DeleteTriggeringMessage()
}

// PrefixProvider supplies the invocation prefix for a context. An empty
// string means prefix invocation is disabled there (mentions still work).
type PrefixProvider interface {
	PrefixFor(ctx Context) string
}

// PrefixFunc adapts a plain function to the PrefixProvider interface.
type PrefixFunc func(ctx Context) string

func (f PrefixFunc) PrefixFor(ctx Context) string { return f(ctx) }

// StaticPrefix returns a provider that always answers with the same prefix.
func StaticPrefix(prefix string) PrefixProvider {
	return PrefixFunc(func(Context) string { return prefix })
}

// ErrorReporter is the single sink every dispatch failure funnels into:
// binding, permissions, filters, handler. Exactly one failure per dispatch
// reaches it; ordinary non-command chatter never does. How it surfaces the
// failure to the user is entirely its business.
type ErrorReporter interface {
	Report(ctx Context, cmd *Command, rawArgs []string, err error)
}

// ReporterFunc adapts a plain function to the ErrorReporter interface.
type ReporterFunc func(ctx Context, cmd *Command, rawArgs []string, err error)

func (f ReporterFunc) Report(ctx Context, cmd *Command, rawArgs []string, err error) {
	f(ctx, cmd, rawArgs, err)
}
