// Package config loads the optional oaiview TOML configuration file.
//
// A missing file is not an error; [Default] applies. Environment variables
// referenced as $VAR or ${VAR} are expanded before decoding, so API keys can
// live in the environment or a .env file:
//
//	[endpoints.europeana]
//	url = "https://api.europeana.eu/oai/record?wskey=${EUROPEANA_KEY}"
//	format = "edm"
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/oaiview/pkg/errors"
)

const appName = "oaiview"

// EnvPath overrides the config file location.
const EnvPath = "OAIVIEW_CONFIG"

// Config is the parsed configuration file.
type Config struct {
	Defaults  Defaults            `toml:"defaults"`
	Endpoints map[string]Endpoint `toml:"endpoints"`
}

// Defaults are fallbacks for command line flags.
type Defaults struct {
	RankDir     string        `toml:"rankdir"`
	ImageFormat string        `toml:"image_format"`
	Style       string        `toml:"style"`
	MaxRequests int           `toml:"max_requests"`
	Timeout     time.Duration `toml:"timeout"`
	Retries     int           `toml:"retries"`
}

// Endpoint is a named repository.
type Endpoint struct {
	URL    string `toml:"url"`
	Format string `toml:"format"`
	Set    string `toml:"set"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			RankDir:     "TB",
			ImageFormat: "png",
			Style:       "monokai",
			MaxRequests: 1024,
			Timeout:     60 * time.Second,
			Retries:     8,
		},
		Endpoints: map[string]Endpoint{},
	}
}

// Path returns the config file location: $OAIVIEW_CONFIG, then
// $XDG_CONFIG_HOME/oaiview/config.toml, then ~/.config/oaiview/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path on top of [Default]. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if stderrors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Decode(os.ExpandEnv(string(data)), cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Decode parses TOML text into cfg and validates the result.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key: %s", undecoded[0])
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	return nil
}

func (c *Config) normalize() {
	c.Defaults.RankDir = strings.ToUpper(strings.TrimSpace(c.Defaults.RankDir))
	c.Defaults.ImageFormat = strings.ToLower(strings.TrimSpace(c.Defaults.ImageFormat))
	if c.Endpoints == nil {
		c.Endpoints = map[string]Endpoint{}
	}
}

// Resolve looks up a configured endpoint by name. Anything else must be an
// http(s) URL and is returned as an endpoint with no format.
func (c *Config) Resolve(nameOrURL string) (Endpoint, error) {
	if ep, ok := c.Endpoints[nameOrURL]; ok {
		return ep, nil
	}
	if err := errors.ValidateEndpoint(nameOrURL); err != nil {
		return Endpoint{}, errors.Wrap(errors.ErrCodeInvalidEndpoint, err,
			"%q is neither a configured endpoint nor a URL", nameOrURL)
	}
	return Endpoint{URL: nameOrURL}, nil
}

// Names returns the configured endpoint names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Endpoints))
	for name := range c.Endpoints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
