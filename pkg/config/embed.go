package config

import (
	_ "embed"

	"github.com/arthur-debert/dotman/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultSettingsContent returns the embedded [settings] defaults
func DefaultSettingsContent() string {
	return string(defaultConfig)
}

// embeddedDefaults feeds defaultConfig to koanf through a parser
type embeddedDefaults struct{}

func (embeddedDefaults) ReadBytes() ([]byte, error) { return defaultConfig, nil }

func (embeddedDefaults) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "embedded defaults must be read with a parser")
}
