package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "DOTMAN_"

const settingsKey = "settings"

// Settings tune how dotman drives git and classifies managed files
type Settings struct {
	GitBinary       string `koanf:"git_binary"`
	RemoteName      string `koanf:"remote_name"`
	Branch          string `koanf:"branch"`
	SourceExtension string `koanf:"source_extension"`
}

// settingKeys lists the keys that may be set from the environment
var settingKeys = map[string]bool{
	"git_binary":       true,
	"remote_name":      true,
	"branch":           true,
	"source_extension": true,
}

// LoadSettings merges, lowest priority first, the embedded defaults, the
// [settings] table of the record at path (when it exists) and DOTMAN_*
// variables such as DOTMAN_GIT_BINARY.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(embeddedDefaults{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
					WithDetail("path", path)
			}
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !settingKeys[key] {
			return ""
		}
		return settingsKey + "." + key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf(settingsKey, &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate rejects settings that would make commands misbehave
func (s *Settings) Validate() error {
	if s.GitBinary == "" {
		return errors.New(errors.ErrConfigParse, "settings.git_binary can not be empty")
	}
	if s.RemoteName == "" {
		return errors.New(errors.ErrConfigParse, "settings.remote_name can not be empty")
	}
	if s.Branch == "" {
		return errors.New(errors.ErrConfigParse, "settings.branch can not be empty")
	}
	if s.SourceExtension != "" && !strings.HasPrefix(s.SourceExtension, ".") {
		return errors.Newf(errors.ErrConfigParse, "settings.source_extension must start with a dot, got %q", s.SourceExtension)
	}
	return nil
}
