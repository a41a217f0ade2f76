// Package config resolves the server configuration from defaults, an
// optional YAML file and the environment, in that order of precedence.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/d-kuro/tana-mcp/internal/errors"
	"github.com/d-kuro/tana-mcp/internal/tana"
	"github.com/d-kuro/tana-mcp/internal/validation"
)

// Environment variables.
const (
	EnvAPIToken   = "TANA_API_TOKEN"
	EnvEndpoint   = "TANA_API_ENDPOINT"
	EnvLogLevel   = "LOG_LEVEL"
	EnvConfigPath = "TANA_MCP_CONFIG"
	EnvAllowHTTP  = "TANA_API_ALLOW_HTTP"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// Config is the resolved server configuration.
type Config struct {
	APIToken string `yaml:"api_token"`
	Endpoint string `yaml:"endpoint"`
	LogLevel string `yaml:"log_level"`

	// AllowHTTP permits a plain http endpoint, e.g. a local test double.
	AllowHTTP bool `yaml:"allow_http"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Endpoint: tana.DefaultEndpoint,
		LogLevel: DefaultLogLevel,
	}
}

// Load resolves configuration from path (or TANA_MCP_CONFIG when path is
// empty) and the process environment.
func Load(path string) (*Config, error) {
	return LoadFrom(path, os.LookupEnv)
}

// LoadFrom is a testable variant of Load.
func LoadFrom(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if path == "" {
		path, _ = lookup(EnvConfigPath)
	}
	if path = strings.TrimSpace(path); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigurationWithCause("failed to read config file "+path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.ConfigurationWithCause("failed to parse config file "+path, err)
	}

	c.Path = path
	return nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvAPIToken); ok && strings.TrimSpace(v) != "" {
		c.APIToken = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvEndpoint); ok && strings.TrimSpace(v) != "" {
		c.Endpoint = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvAllowHTTP); ok && strings.TrimSpace(v) != "" {
		allow, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.ConfigurationWithCause("invalid "+EnvAllowHTTP, err)
		}
		c.AllowHTTP = allow
	}
	return nil
}

// Validate reports whether the configuration can be used to serve requests.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIToken) == "" {
		return errors.Configuration(EnvAPIToken + " environment variable is required")
	}
	if err := c.endpointValidator().ValidateEndpoint(c.Endpoint); err != nil {
		return errors.ConfigurationWithCause("invalid endpoint", err)
	}
	return nil
}

func (c *Config) endpointValidator() *validation.DefaultValidator {
	v := validation.NewDefaultValidator()
	if c.AllowHTTP {
		v = v.WithAllowedEndpointSchemes([]string{"https", "http"})
	}
	return v
}

// MaskedToken returns the token with all but its last four characters hidden.
func (c *Config) MaskedToken() string {
	token := c.APIToken
	switch {
	case token == "":
		return "(not set)"
	case len(token) <= 4:
		return strings.Repeat("*", len(token))
	default:
		return strings.Repeat("*", 8) + token[len(token)-4:]
	}
}
