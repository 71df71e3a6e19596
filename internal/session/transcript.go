// ABOUTME: Renders recent session history into a compact prompt preamble
// ABOUTME: Pure function of the message slice; bounded turns and per-turn length

package session

import (
	"strings"
)

// DefaultMaxTurns is how many trailing messages the transcript includes.
const DefaultMaxTurns = 10

// maxTurnChars bounds each rendered turn so one long answer cannot crowd the
// prompt.
const maxTurnChars = 200

// Transcript renders the last maxTurns messages as a prompt preamble:
//
//	Previous conversation:
//	- user: ...
//	- assistant: ...
//
// Each turn is truncated to 200 characters. Returns the empty string when
// there are no messages. maxTurns <= 0 means the default.
func Transcript(msgs []Message, maxTurns int) string {
	if len(msgs) == 0 {
		return ""
	}
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if len(msgs) > maxTurns {
		msgs = msgs[len(msgs)-maxTurns:]
	}

	lines := make([]string, 0, len(msgs)+1)
	lines = append(lines, "Previous conversation:")
	for _, m := range msgs {
		lines = append(lines, "- "+m.Role+": "+truncate(m.Content, maxTurnChars))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
