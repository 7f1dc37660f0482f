// Package commands holds Herald's built-in command set. Each file builds one
// dispatch.Command; wiring them into a registry happens in the entrypoints.
package commands

import "github.com/bwmarrin/discordgo"

const embedColor = 0x9B59B6

// discordSession is implemented by the Discord adapter's context. Commands
// that need raw platform access (ban, purge) assert for it and refuse to run
// on transports that don't provide one.
type discordSession interface {
	Session() *discordgo.Session
}
