// Package config loads settings shared by the st CLI and the stmock server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. ST_API_BASE_URL.
const EnvPrefix = "ST"

// Config is the resolved configuration.
type Config struct {
	API   API
	Agent Agent
	Mock  Mock
}

// API configures the client transport.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// Agent holds the identity the CLI acts as.
type Agent struct {
	Symbol    string
	Faction   string
	Token     string
	TokenFile string
}

// Mock configures the local mock server.
type Mock struct {
	Addr         string
	SigningKey   string
	CORSOrigins  []string
	RateLimitRPS int
	RateBurst    int
}

// Dir returns the per-user settings directory, ~/.spacetraders.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spacetraders"
	}
	return filepath.Join(home, ".spacetraders")
}

// SetDefaults installs the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.spacetraders.io/v2")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("agent.symbol", "")
	v.SetDefault("agent.faction", "COSMIC")
	v.SetDefault("agent.token", "")
	v.SetDefault("agent.token_file", filepath.Join(Dir(), "token"))
	v.SetDefault("mock.addr", ":8089")
	v.SetDefault("mock.signing_key", "")
	v.SetDefault("mock.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("mock.rate_limit_rps", 2)
	v.SetDefault("mock.rate_burst", 10)
}

// New returns a viper instance with defaults and environment overrides
// installed. When path is empty, config.yaml is searched for in Dir() and
// the working directory.
func New(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Read reads the config file into v. A missing file is not an error; the
// returned bool reports whether one was found.
func Read(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var cfgNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &cfgNotFound) {
			return false, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read config: %w", err)
	}
	return true, nil
}

// Load builds a viper instance for path, reads it and resolves the result.
func Load(path string) (*Config, *viper.Viper, error) {
	v := New(path)
	if _, err := Read(v); err != nil {
		return nil, nil, err
	}
	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// FromViper resolves the typed configuration from v.
func FromViper(v *viper.Viper) (*Config, error) {
	timeout := v.GetDuration("api.timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("api.timeout must be positive, got %q", v.GetString("api.timeout"))
	}
	base := strings.TrimRight(v.GetString("api.base_url"), "/")
	if base == "" {
		return nil, errors.New("api.base_url is required")
	}
	return &Config{
		API: API{
			BaseURL: base,
			Timeout: timeout,
		},
		Agent: Agent{
			Symbol:    v.GetString("agent.symbol"),
			Faction:   strings.ToUpper(v.GetString("agent.faction")),
			Token:     v.GetString("agent.token"),
			TokenFile: expandHome(v.GetString("agent.token_file")),
		},
		Mock: Mock{
			Addr:         v.GetString("mock.addr"),
			SigningKey:   v.GetString("mock.signing_key"),
			CORSOrigins:  v.GetStringSlice("mock.cors_origins"),
			RateLimitRPS: v.GetInt("mock.rate_limit_rps"),
			RateBurst:    v.GetInt("mock.rate_burst"),
		},
	}, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
