//go:build embedded

package config

func load() (Config, error) {
	return Embedded(), nil
}
