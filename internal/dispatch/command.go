package dispatch

// Capability is a named permission either the caller or the bot itself must
// hold before a command runs. Adapters map capabilities to whatever their
// platform uses (Discord permission bits, nothing at all for the CLI).
type Capability string

const (
	CapAdministrator  Capability = "administrator"
	CapManageMessages Capability = "manage-messages"
	CapManageChannels Capability = "manage-channels"
	CapBanMembers     Capability = "ban-members"
	CapKickMembers    Capability = "kick-members"
)

// Argument declares one positional argument of a command. Order in
// Command.Arguments is significant: token i binds to argument i.
type Argument struct {
	Key      string
	Type     string // factory type name, e.g. "string", "number", "user"
	Required bool
}

// Handler executes a resolved command. The returned Reply may be nil, in
// which case nothing is sent back.
type Handler interface {
	Handle(ctx Context, args *ArgumentMap) (Reply, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx Context, args *ArgumentMap) (Reply, error)

func (f HandlerFunc) Handle(ctx Context, args *ArgumentMap) (Reply, error) {
	return f(ctx, args)
}

// Filter is a pre-execution hook. It may cancel the call or raise; a raise
// stops the chain, a cancel does not. Filters see the bound arguments
// read-only.
type Filter interface {
	Filter(call *CommandCall, ctx Context, args *ArgumentMap) error
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(call *CommandCall, ctx Context, args *ArgumentMap) error

func (f FilterFunc) Filter(call *CommandCall, ctx Context, args *ArgumentMap) error {
	return f(call, ctx, args)
}

// Command is an immutable command definition. Build it once during setup and
// hand it to a Registry; nothing mutates it afterwards.
type Command struct {
	Label       string
	Aliases     []string
	Description string
	Category    string
	Arguments   []Argument
	Handler     Handler
	Filters     []Filter
	SubCommands []*Command

	// BotRequires and UserRequires are checked before the filter chain:
	// BotRequires against the bot account, UserRequires against the caller.
	BotRequires  []Capability
	UserRequires []Capability

	// NoTyping suppresses the typing indicator before the handler runs.
	NoTyping bool
}

// Usage renders a short positional-argument synopsis, e.g. "<user> [reason]".
func (c *Command) Usage() string {
	out := c.Label
	for _, a := range c.Arguments {
		if a.Required {
			out += " <" + a.Key + ">"
		} else {
			out += " [" + a.Key + "]"
		}
	}
	return out
}

// CommandCall is the per-invocation record shared by the filter chain.
// Cancellation is a logical flag: it skips the handler but never stops
// later filters from running.
type CommandCall struct {
	Command   *Command
	cancelled bool
}

// Cancel marks the call as cancelled.
func (c *CommandCall) Cancel() { c.cancelled = true }

// Cancelled reports whether a filter cancelled the call.
func (c *CommandCall) Cancelled() bool { return c.cancelled }

// ArgumentMap holds the bound, type-converted arguments of one invocation.
// It is the only argument surface a handler sees and is read-only once built.
type ArgumentMap struct {
	values map[string]any
}

func newArgumentMap(values map[string]any) *ArgumentMap {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &ArgumentMap{values: copied}
}

// Has reports whether a key was bound. Optional arguments without a token
// are absent, not nil.
func (m *ArgumentMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the bound value for key, or nil.
func (m *ArgumentMap) Get(key string) any { return m.values[key] }

// String returns the value bound to key as a string, or "" if absent or not
// a string.
func (m *ArgumentMap) String(key string) string {
	s, _ := m.values[key].(string)
	return s
}

// Int returns the value bound to key as an int, or 0.
func (m *ArgumentMap) Int(key string) int {
	n, _ := m.values[key].(int)
	return n
}

// Float returns the value bound to key as a float64, or 0.
func (m *ArgumentMap) Float(key string) float64 {
	f, _ := m.values[key].(float64)
	return f
}

// Len returns the number of bound arguments.
func (m *ArgumentMap) Len() int { return len(m.values) }
