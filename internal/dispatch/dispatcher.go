// Package dispatch is the command core: it decides whether a raw chat line
// is addressed to the bot, resolves it to a registered command, binds typed
// positional arguments, gates on capabilities, runs the filter chain and
// renders whatever the handler returns. Platform I/O stays behind the
// Context, PrefixProvider and ErrorReporter interfaces.
package dispatch

import (
	"fmt"
	"log"
	"strings"
)

// Dispatcher routes raw messages to command handlers. Build one during
// setup, then call Handle from the adapter's message event. Dispatch touches
// only read-only shared state, so concurrent invocations are independent.
type Dispatcher struct {
	registry  *Registry
	factories *FactoryRegistry
	prefixes  PrefixProvider
	reporter  ErrorReporter
	filters   []Filter
}

// New returns a dispatcher over the given registries. The reporter receives
// every dispatch failure; the prefix provider may be nil to disable prefix
// invocation (mentions still work).
func New(registry *Registry, factories *FactoryRegistry, prefixes PrefixProvider, reporter ErrorReporter) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		factories: factories,
		prefixes:  prefixes,
		reporter:  reporter,
	}
}

// Use appends a dispatcher-level filter. These run before any per-command
// filters, in the order added. Call during setup only.
func (d *Dispatcher) Use(f Filter) {
	d.filters = append(d.filters, f)
}

// Registry exposes the command registry, e.g. for a help command.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Handle routes one incoming message. Ordinary chatter (no prefix, no
// mention, unknown label) returns with zero side effects; anything that
// fails past resolution goes to the error reporter exactly once.
func (d *Dispatcher) Handle(ctx Context) {
	content := strings.TrimSpace(ctx.RawMessage())

	rest, ok := d.stripInvocationPrefix(ctx, content)
	if !ok {
		return
	}

	tokens := Tokenize(rest)
	if len(tokens) == 0 {
		return
	}

	cmd := d.registry.Resolve(tokens[0])
	if cmd == nil {
		return
	}
	args := tokens[1:]

	// One level of sub-command descent, by direct label only.
	if len(args) > 0 {
		if sub := cmd.subCommand(args[0]); sub != nil {
			cmd = sub
			args = args[1:]
		}
	}

	d.execute(ctx, cmd, args)
}

// stripInvocationPrefix decides whether content is addressed to the bot and
// returns the remainder. A direct mention of the bot takes precedence over
// the configured prefix; a message that is exactly the mention or exactly
// the prefix is not an invocation.
func (d *Dispatcher) stripInvocationPrefix(ctx Context, content string) (string, bool) {
	if selfID := ctx.SelfID(); selfID != "" {
		for _, mention := range []string{"<@" + selfID + "> ", "<@!" + selfID + "> "} {
			if strings.HasPrefix(content, mention) {
				return content[len(mention):], true
			}
		}
	}

	var prefix string
	if d.prefixes != nil {
		prefix = d.prefixes.PrefixFor(ctx)
	}
	if prefix != "" && content != prefix && strings.HasPrefix(content, prefix) {
		return content[len(prefix):], true
	}
	return "", false
}

// execute runs the resolved command: bind, gate, filter, invoke, render.
func (d *Dispatcher) execute(ctx Context, cmd *Command, args []string) {
	argMap, err := Bind(d.factories, cmd, args)
	if err != nil {
		d.report(ctx, cmd, args, err)
		return
	}

	if err := gate(ctx, cmd); err != nil {
		d.report(ctx, cmd, args, err)
		return
	}

	call := &CommandCall{Command: cmd}
	for _, f := range append(append([]Filter{}, d.filters...), cmd.Filters...) {
		if err := f.Filter(call, ctx, argMap); err != nil {
			d.report(ctx, cmd, args, err)
			return
		}
	}
	if call.Cancelled() {
		return
	}

	if !cmd.NoTyping {
		ctx.SendTyping()
	}

	result, err := cmd.Handler.Handle(ctx, argMap)
	if err != nil {
		d.report(ctx, cmd, args, &HandlerError{Cause: err})
		return
	}

	if ctx.SystemHasCapability(CapManageMessages) {
		ctx.DeleteTriggeringMessage()
	}

	d.render(ctx, result)
}

// gate checks the bot's own capabilities before the caller's: the bot being
// unable to act is the more fundamental blocker.
func gate(ctx Context, cmd *Command) error {
	for _, cap := range cmd.BotRequires {
		if !ctx.SystemHasCapability(cap) {
			return &BotNotAllowedError{Capability: cap}
		}
	}
	for _, cap := range cmd.UserRequires {
		if !ctx.CallerHasCapability(cap) {
			return &UserNotAllowedError{Capability: cap}
		}
	}
	return nil
}

// render sends the handler's reply, if any.
func (d *Dispatcher) render(ctx Context, result Reply) {
	switch r := result.(type) {
	case nil:
	case Text:
		if err := ctx.SendText(string(r)); err != nil {
			log.Printf("[WARN] Failed to send reply: %v", err)
		}
	case Embed:
		if err := ctx.SendEmbed(r.Embed); err != nil {
			log.Printf("[WARN] Failed to send embed reply: %v", err)
		}
	default:
		if err := ctx.SendText(fmt.Sprint(r)); err != nil {
			log.Printf("[WARN] Failed to send reply: %v", err)
		}
	}
}

// report hands one failure to the reporter. A misbehaving reporter must not
// leak back into the dispatch path.
func (d *Dispatcher) report(ctx Context, cmd *Command, args []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERR] Error reporter panicked: %v", r)
		}
	}()
	if d.reporter != nil {
		d.reporter.Report(ctx, cmd, args, err)
	}
}
