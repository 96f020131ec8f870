// Package commands holds the operator commands of the tooling binary.
package commands

import (
	"errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

// ErrNotBootstrapped is returned by read-only commands when the database
// or the users table is missing.
var ErrNotBootstrapped = errors.New("not bootstrapped, run bootstrap first")

// ErrUnknownCommand is returned for a command name the tooling does not know.
var ErrUnknownCommand = errors.New("unknown command")
