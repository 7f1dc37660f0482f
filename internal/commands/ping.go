package commands

import (
	"herald/internal/dispatch"
)

// Ping replies with a pong. Mostly useful to check the bot is alive and the
// prefix is what you think it is.
func Ping() *dispatch.Command {
	return &dispatch.Command{
		Label:       "ping",
		Description: "Pong!",
		Category:    "Information",
		NoTyping:    true,
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, _ *dispatch.ArgumentMap) (dispatch.Reply, error) {
			return dispatch.Text("🏓 Pong!"), nil
		}),
	}
}
