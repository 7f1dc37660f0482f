package dispatch

import "regexp"

// tokenPattern splits a line on whitespace while keeping quoted runs
// together. A double- or single-quoted run becomes one token with the quotes
// stripped and its content taken verbatim. The trailing \S+ alternative
// catches anything the quoted forms reject, so an unterminated quote stays
// in the output as literal characters instead of being dropped.
var tokenPattern = regexp.MustCompile(`"([^"]*)"|'([^']*)'|[^\s"']+|\S+`)

// Tokenize splits a raw line into tokens.
//
// Example:
//
//	I am a "discord bot"
//
// yields ["I", "am", "a", "discord bot"].
func Tokenize(line string) []string {
	matches := tokenPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		switch {
		case m[2] >= 0: // "..." content
			tokens = append(tokens, line[m[2]:m[3]])
		case m[4] >= 0: // '...' content
			tokens = append(tokens, line[m[4]:m[5]])
		default:
			tokens = append(tokens, line[m[0]:m[1]])
		}
	}
	return tokens
}
