package filter

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"herald/internal/dispatch"
)

// stubContext is the minimal dispatch.Context filters need.
type stubContext struct {
	authorID string
	guildID  string
}

func (c *stubContext) RawMessage() string { return "" }
func (c *stubContext) SelfID() string     { return "bot" }
func (c *stubContext) GuildID() string    { return c.guildID }
func (c *stubContext) ChannelID() string  { return "channel-1" }
func (c *stubContext) AuthorID() string   { return c.authorID }
func (c *stubContext) AuthorName() string { return c.authorID }

func (c *stubContext) CallerHasCapability(dispatch.Capability) bool { return true }
func (c *stubContext) SystemHasCapability(dispatch.Capability) bool { return true }

func (c *stubContext) SendText(string) error                   { return nil }
func (c *stubContext) SendEmbed(*discordgo.MessageEmbed) error { return nil }
func (c *stubContext) SendTyping()                             {}
func (c *stubContext) DeleteTriggeringMessage()                {}

func call() *dispatch.CommandCall {
	return &dispatch.CommandCall{Command: &dispatch.Command{Label: "ping"}}
}

func TestRateLimitCancelsAfterBurst(t *testing.T) {
	rl := NewRateLimit(1, 2) // one per minute, burst of two
	ctx := &stubContext{authorID: "user-1"}

	first := call()
	assert.NoError(t, rl.Filter(first, ctx, nil))
	assert.False(t, first.Cancelled())

	second := call()
	assert.NoError(t, rl.Filter(second, ctx, nil))
	assert.False(t, second.Cancelled())

	third := call()
	assert.NoError(t, rl.Filter(third, ctx, nil))
	assert.True(t, third.Cancelled(), "burst exhausted, call should be cancelled")
}

func TestRateLimitTracksUsersIndependently(t *testing.T) {
	rl := NewRateLimit(1, 1)

	alice := call()
	assert.NoError(t, rl.Filter(alice, &stubContext{authorID: "alice"}, nil))
	assert.False(t, alice.Cancelled())

	aliceAgain := call()
	assert.NoError(t, rl.Filter(aliceAgain, &stubContext{authorID: "alice"}, nil))
	assert.True(t, aliceAgain.Cancelled())

	bob := call()
	assert.NoError(t, rl.Filter(bob, &stubContext{authorID: "bob"}, nil))
	assert.False(t, bob.Cancelled(), "another user's budget is untouched")
}
