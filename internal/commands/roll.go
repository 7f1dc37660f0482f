package commands

import (
	"fmt"
	"math/rand/v2"

	"herald/internal/dispatch"
)

// Roll rolls a die. Defaults to six sides; pass a number for something
// fancier.
func Roll() *dispatch.Command {
	return &dispatch.Command{
		Label:       "roll",
		Aliases:     []string{"dice"},
		Description: "Roll a die, optionally with a custom number of sides.",
		Category:    "Fun",
		NoTyping:    true,
		Arguments: []dispatch.Argument{
			{Key: "sides", Type: "number", Required: false},
		},
		Handler: dispatch.HandlerFunc(func(ctx dispatch.Context, args *dispatch.ArgumentMap) (dispatch.Reply, error) {
			sides := 6
			if args.Has("sides") {
				sides = args.Int("sides")
			}
			if sides < 2 {
				return dispatch.Text("A die needs at least 2 sides."), nil
			}
			return dispatch.Text(fmt.Sprintf("🎲 You rolled a **%d** (d%d)", rand.IntN(sides)+1, sides)), nil
		}),
	}
}
