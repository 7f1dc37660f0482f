package commands

import (
	"herald/internal/dispatch"
)

// Say repeats a message as the bot. Quote the text to keep spaces in one
// argument: say "hello there".
func Say() *dispatch.Command {
	return &dispatch.Command{
		Label:       "say",
		Aliases:     []string{"echo"},
		Description: "Make the bot say something.",
		Category:    "Fun",
		Arguments: []dispatch.Argument{
			{Key: "text", Type: "string", Required: true},
		},
		UserRequires: []dispatch.Capability{dispatch.CapManageMessages},
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, args *dispatch.ArgumentMap) (dispatch.Reply, error) {
			return dispatch.Text(args.String("text")), nil
		}),
	}
}
