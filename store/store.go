package store

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidIdentifier is returned when a table or column name is not a
// plain SQL identifier. Names are interpolated into query text, so anything
// else is rejected at construction time.
var ErrInvalidIdentifier = errors.New("store: invalid SQL identifier")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}
