package slack

import (
	"fmt"
	"strings"
)

// Mention is a parsed user-mention token.
type Mention struct {
	ID      string
	Display string
}

// ParseMention parses a Slack user-mention token of the form
// "<@U123|alice>" into its user id and display name. Anything that does
// not match that exact shape is an error, never a partial split.
func ParseMention(s string) (Mention, error) {
	if !strings.HasPrefix(s, "<@") || !strings.HasSuffix(s, ">") {
		return Mention{}, fmt.Errorf("not a user mention token: %q", s)
	}
	inner := s[2 : len(s)-1]
	id, display, ok := strings.Cut(inner, "|")
	if !ok || id == "" || display == "" {
		return Mention{}, fmt.Errorf("not a user mention token: %q", s)
	}
	return Mention{ID: id, Display: display}, nil
}
