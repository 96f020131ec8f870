package postgresdb

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidIdentifier is returned for names that cannot be used as a bare
// SQL identifier.
var ErrInvalidIdentifier = errors.New("invalid identifier")

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// maxIdentifierLength is NAMEDATALEN-1 on a stock server.
const maxIdentifierLength = 63

// QuoteIdentifier validates and quotes an identifier for statements that
// cannot take bind parameters, such as CREATE DATABASE. A single
// schema-qualified name ("public.users") is accepted.
func QuoteIdentifier(name string) (string, error) {
	segments := strings.Split(name, ".")
	if len(segments) > 2 {
		return "", fmt.Errorf("%w (too many segments): %q", ErrInvalidIdentifier, name)
	}

	quoted := make([]string, len(segments))
	for i, segment := range segments {
		if len(segment) > maxIdentifierLength {
			return "", fmt.Errorf("%w (longer than %d): %q", ErrInvalidIdentifier, maxIdentifierLength, segment)
		}
		if !identifierPattern.MatchString(segment) {
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, segment)
		}
		quoted[i] = `"` + segment + `"`
	}

	return strings.Join(quoted, "."), nil
}
