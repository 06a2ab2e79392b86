package preset

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a named preset does not exist.
var ErrNotFound = errors.New("preset not found")

// ParseError reports a token that could not be understood.
type ParseError struct {
	Key    string // where the token was found, e.g. "styles.title.foreground[1]"
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Key, e.Value, e.Reason)
}
