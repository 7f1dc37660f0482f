package dispatch

import (
	"fmt"
	"strings"
)

// Registry holds the top-level commands in registration order. Lookup is
// case-insensitive over labels and aliases; the first registered match wins.
// Register during setup, read during dispatch.
type Registry struct {
	commands []*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a top-level command. It rejects label/alias collisions with
// already registered commands and validates the command's own sub-command
// tree the same way.
func (r *Registry) Register(cmd *Command) error {
	if cmd.Label == "" {
		return fmt.Errorf("command label cannot be empty")
	}
	for _, name := range append([]string{cmd.Label}, cmd.Aliases...) {
		for _, existing := range r.commands {
			if existing.matches(name) {
				return fmt.Errorf("command name '%s' collides with registered command '%s'", name, existing.Label)
			}
		}
	}
	if err := validateSubCommands(cmd); err != nil {
		return err
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// MustRegister registers a command and panics on collision. Meant for
// setup-time wiring where a collision is a programming error.
func (r *Registry) MustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Resolve returns the first registered command whose label or any alias
// equals name case-insensitively, or nil.
func (r *Registry) Resolve(name string) *Command {
	for _, cmd := range r.commands {
		if cmd.matches(name) {
			return cmd
		}
	}
	return nil
}

// All returns the registered commands in registration order.
func (r *Registry) All() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

func (c *Command) matches(name string) bool {
	if strings.EqualFold(c.Label, name) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// subCommand returns the direct sub-command whose label equals name
// case-insensitively. Sub-command matching is by label only, one level deep.
func (c *Command) subCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if strings.EqualFold(sub.Label, name) {
			return sub
		}
	}
	return nil
}

func validateSubCommands(cmd *Command) error {
	seen := make(map[string]string)
	for _, sub := range cmd.SubCommands {
		for _, name := range append([]string{sub.Label}, sub.Aliases...) {
			key := strings.ToLower(name)
			if owner, dup := seen[key]; dup {
				return fmt.Errorf("sub-command name '%s' of '%s' collides with '%s'", name, cmd.Label, owner)
			}
			seen[key] = sub.Label
		}
		if err := validateSubCommands(sub); err != nil {
			return err
		}
	}
	return nil
}
