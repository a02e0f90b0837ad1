// Package config holds the roverrun application settings and loads them
// from YAML.
//
//	log:
//	  level: info     # debug, info, warn, error
//	  format: text    # text or json
//	render:
//	  colour: false
//	  costs: true
//	  codes: false
//
// Missing keys keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roverrun/internal/ctxlog"
)

// ErrInvalid indicates a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full application configuration.
type Config struct {
	Log    Log    `yaml:"log"`
	Render Render `yaml:"render"`
}

// Log selects the log level and handler format.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Render selects what the show command prints.
type Render struct {
	Colour bool `yaml:"colour"`
	Costs  bool `yaml:"costs"`
	Codes  bool `yaml:"codes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Render: Render{Costs: true},
	}
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be 'text' or 'json'", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}
