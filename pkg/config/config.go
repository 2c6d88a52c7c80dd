// Package config loads prism's runtime configuration: embedded defaults,
// then the user config file under the XDG config dir, then PRISM_*
// environment variables, each layer overriding the previous one. A bare
// LOG_LEVEL variable wins over everything, mirroring the build-time
// switch of classic console loggers.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/console"
	prismerr "github.com/arthur-debert/prism/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix namespaces prism's environment variables: PRISM_LEVEL,
// PRISM_COLOR, PRISM_INTERNAL_LOG.
const envPrefix = "PRISM_"

// Config is prism's runtime configuration.
type Config struct {
	// Level is the verbosity threshold: debug, info, warn, error or none.
	// Empty falls back to debug.
	Level string `koanf:"level" toml:"level" validate:"omitempty,oneof=debug info warn error none"`

	// Color selects the color mode: auto, always or never.
	Color string `koanf:"color" toml:"color" validate:"omitempty,oneof=auto always never"`

	// InternalLog routes the diagnostics channel to stderr and the state
	// file even without -v flags.
	InternalLog bool `koanf:"internal_log" toml:"internal_log"`

	// Aliases maps alias tokens to style specs, registered at startup.
	Aliases map[string]string `koanf:"aliases" toml:"aliases"`
}

var validate = validator.New()

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, prismerr.New(prismerr.ErrInternal, "not implemented")
}

// Path returns the user config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "prism", "config.toml")
}

// Load builds the effective configuration from defaults, the user config
// file and the environment. An unrecognized level or color value fails
// loading; there is no safe guess for a misconfigured deployment.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		return nil, prismerr.Wrap(err, prismerr.ErrConfigLoad,
			"failed to load default configuration")
	}

	// 2. User config file, if present
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, prismerr.Wrapf(err, prismerr.ErrConfigParse,
				"failed to parse %s", path)
		}
	}

	// 3. PRISM_* environment variables
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, prismerr.Wrap(err, prismerr.ErrConfigLoad,
			"failed to load environment variables")
	}

	// 4. Bare LOG_LEVEL wins if set
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := k.Set("level", v); err != nil {
			return nil, prismerr.Wrap(err, prismerr.ErrConfigLoad,
				"failed to apply LOG_LEVEL")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, prismerr.Wrap(err, prismerr.ErrConfigParse,
			"failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values against the allowed literals.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			if fe.Field() == "Level" {
				return prismerr.Newf(prismerr.ErrInvalidLevel,
					"invalid log level %q (want debug, info, warn, error or none)", c.Level)
			}
		}
	}
	return prismerr.Wrap(err, prismerr.ErrConfigInvalid, "invalid configuration")
}

// Threshold returns the configured verbosity threshold. An empty level
// falls back to debug, the original permissive default.
func (c *Config) Threshold() (console.Level, error) {
	if c.Level == "" {
		return console.LevelDebug, nil
	}
	return console.ParseLevel(c.Level)
}

// ColorEnabled resolves the color mode given the terminal detection
// result for the target writer.
func (c *Config) ColorEnabled(autoDetect bool) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return autoDetect
}

// Apply registers the configured aliases on r.
func (c *Config) Apply(r *aliases.Registry) error {
	for token, spec := range c.Aliases {
		if err := r.Register(token, spec); err != nil {
			return err
		}
	}
	return nil
}

// Dump renders the configuration as TOML.
func (c *Config) Dump() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", prismerr.Wrap(err, prismerr.ErrInternal,
			"failed to marshal configuration")
	}
	return string(data), nil
}

// Default returns the built-in configuration values.
func Default() Config {
	var cfg Config
	// the embedded defaults ship with the binary and always parse
	_ = gotoml.Unmarshal(defaultConfig, &cfg)
	return cfg
}

// WriteDefault writes the annotated default config file to path,
// creating parent directories. It refuses to overwrite unless force is
// set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return prismerr.Newf(prismerr.ErrAlreadyExists,
				"config file already exists at %s (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return prismerr.Wrap(err, prismerr.ErrConfigLoad,
			"failed to create config directory")
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return prismerr.Wrap(err, prismerr.ErrConfigLoad,
			"failed to write config file")
	}
	return nil
}
