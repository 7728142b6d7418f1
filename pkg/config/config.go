package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CurrentVersion is written into newly created config files.
const CurrentVersion = "1"

// Auth is the panel URL and API key for one API scope.
type Auth struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

// Logs controls diagnostic output and colour.
type Logs struct {
	ShowDebug bool   `yaml:"show_debug"`
	ShowHTTP  bool   `yaml:"show_http"`
	UseColour bool   `yaml:"use_colour"`
	Level     string `yaml:"level,omitempty"`
}

// HTTP controls request transport and response rendering.
type HTTP struct {
	// ParseBody unwraps the panel's {object, attributes} envelopes before rendering.
	ParseBody bool `yaml:"parse_body"`
	// ParseIndent indents rendered JSON.
	ParseIndent bool   `yaml:"parse_indent"`
	Timeout     string `yaml:"timeout,omitempty"`
}

// Config represents the entire configuration file
type Config struct {
	Version     string `yaml:"version"`
	Application Auth   `yaml:"application"`
	Client      Auth   `yaml:"client"`
	Logs        Logs   `yaml:"logs"`
	HTTP        HTTP   `yaml:"http"`
}

// DefaultTimeout applies when http.timeout is unset or invalid.
const DefaultTimeout = 30 * time.Second

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Logs: Logs{
			UseColour: true,
		},
		HTTP: HTTP{
			ParseIndent: true,
			Timeout:     DefaultTimeout.String(),
		},
	}
}

// RequestTimeout returns the parsed http.timeout.
func (c *Config) RequestTimeout() time.Duration {
	if c == nil || c.HTTP.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Masked returns a copy with API keys replaced by bullets.
func (c *Config) Masked() *Config {
	cp := *c
	cp.Application.Key = mask(c.Application.Key)
	cp.Client.Key = mask(c.Client.Key)
	return &cp
}

func mask(s string) string {
	return strings.Repeat("•", len([]rune(s)))
}

type keySpec struct {
	get func(*Config) string
	set func(*Config, string) error
}

var keys = map[string]keySpec{
	"application.url": stringKey(func(c *Config) *string { return &c.Application.URL }, validateURL),
	"application.key": stringKey(func(c *Config) *string { return &c.Application.Key }, nil),
	"client.url":      stringKey(func(c *Config) *string { return &c.Client.URL }, validateURL),
	"client.key":      stringKey(func(c *Config) *string { return &c.Client.Key }, nil),
	"logs.show_debug": boolKey(func(c *Config) *bool { return &c.Logs.ShowDebug }),
	"logs.show_http":  boolKey(func(c *Config) *bool { return &c.Logs.ShowHTTP }),
	"logs.use_colour": boolKey(func(c *Config) *bool { return &c.Logs.UseColour }),
	"logs.level":      stringKey(func(c *Config) *string { return &c.Logs.Level }, validateLevel),
	"http.parse_body": boolKey(func(c *Config) *bool { return &c.HTTP.ParseBody }),
	"http.parse_indent": boolKey(func(c *Config) *bool {
		return &c.HTTP.ParseIndent
	}),
	"http.timeout": stringKey(func(c *Config) *string { return &c.HTTP.Timeout }, validateTimeout),
}

// Keys lists every settable config key in sorted order.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Get returns the string form of a config key.
func Get(cfg *Config, key string) (string, error) {
	spec, ok := keys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return spec.get(cfg), nil
}

// Set updates one config key from its string form.
func Set(cfg *Config, key, value string) error {
	spec, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := spec.set(cfg, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

func stringKey(field func(*Config) *string, validate func(string) error) keySpec {
	return keySpec{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error {
			if validate != nil {
				if err := validate(v); err != nil {
					return err
				}
			}
			*field(c) = v
			return nil
		},
	}
}

func boolKey(field func(*Config) *bool) keySpec {
	return keySpec{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*field(c) = b
			return nil
		},
	}
}

func validateURL(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		return fmt.Errorf("url must start with http:// or https://")
	}
	return nil
}

func validateLevel(v string) error {
	switch v {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("must be one of: debug, info, warn, error")
	}
}

func validateTimeout(v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
