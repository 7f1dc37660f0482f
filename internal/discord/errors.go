package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"herald/internal/dispatch"
)

const embedColor = 0xB4202A

// Reporter is the dispatch error sink: it turns typed dispatch failures
// into short user-facing embeds and logs the rest.
type Reporter struct{}

// Report implements dispatch.ErrorReporter.
func (Reporter) Report(ctx dispatch.Context, cmd *dispatch.Command, args []string, err error) {
	var (
		wrongArgs  *dispatch.WrongArgumentNumberError
		badType    *dispatch.BadArgumentTypeError
		botDenied  *dispatch.BotNotAllowedError
		userDenied *dispatch.UserNotAllowedError
		handler    *dispatch.HandlerError
	)

	var description string
	switch {
	case errors.As(err, &wrongArgs):
		description = fmt.Sprintf("Wrong number of arguments.\nUsage: `%s`", cmd.Usage())
	case errors.As(err, &badType):
		description = fmt.Sprintf("`%s` is not a valid **%s**.", badType.Value, badType.Type)
	case errors.As(err, &botDenied):
		description = fmt.Sprintf("I'm missing the **%s** permission here.", botDenied.Capability)
	case errors.As(err, &userDenied):
		description = fmt.Sprintf("You need the **%s** permission to do that.", userDenied.Capability)
	case errors.As(err, &handler):
		log.Printf("[ERR] Command '%s' failed (args %v): %v", cmd.Label, args, handler.Cause)
		description = fmt.Sprintf("Something went wrong running `%s`.", cmd.Label)
	default:
		log.Printf("[ERR] Dispatch of '%s' failed (args %v): %v", cmd.Label, args, err)
		description = fmt.Sprintf("Something went wrong running `%s`.", cmd.Label)
	}

	sendErr := ctx.SendEmbed(&discordgo.MessageEmbed{
		Description: description,
		Color:       embedColor,
	})
	if sendErr != nil {
		log.Println("[WARN] Failed to send error message:", sendErr)
	}
}
