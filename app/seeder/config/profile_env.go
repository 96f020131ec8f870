//go:build !embedded

package config

import (
	"fmt"

	"github.com/jrazmi/elkseeder/sdk/environment"
)

func load() (Config, error) {
	if err := environment.LoadEnv(); err != nil {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromLookup(environment.OSLookup)
}
