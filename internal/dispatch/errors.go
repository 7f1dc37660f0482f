package dispatch

import "fmt"

// WrongArgumentNumberError reports a mismatch between the tokens supplied
// and the arguments a command declares: a required argument had no token, or
// more tokens were supplied than the command declares.
type WrongArgumentNumberError struct {
	Command  *Command
	Supplied int
}

func (e *WrongArgumentNumberError) Error() string {
	return fmt.Sprintf("wrong number of arguments for '%s': got %d, declared %d", e.Command.Label, e.Supplied, len(e.Command.Arguments))
}

// BadArgumentTypeError reports a token that an argument factory refused.
type BadArgumentTypeError struct {
	Value string
	Type  string
}

func (e *BadArgumentTypeError) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s", e.Value, e.Type)
}

// BotNotAllowedError reports a capability the bot itself is missing.
type BotNotAllowedError struct {
	Capability Capability
}

func (e *BotNotAllowedError) Error() string {
	return fmt.Sprintf("bot is missing the '%s' capability", e.Capability)
}

// UserNotAllowedError reports a capability the caller is missing.
type UserNotAllowedError struct {
	Capability Capability
}

func (e *UserNotAllowedError) Error() string {
	return fmt.Sprintf("caller is missing the '%s' capability", e.Capability)
}

// HandlerError wraps a failure raised by a command handler. Unlike the
// resolution errors above it may occur after the handler has already caused
// external side effects; those are not rolled back.
type HandlerError struct {
	Cause error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("command handler failed: %v", e.Cause)
}

func (e *HandlerError) Unwrap() error { return e.Cause }
