package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmerrifield20/spacetraders/internal/config"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, _, err := config.Load(filepath.Join(home, "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.spacetraders.io/v2" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.Agent.Faction != "COSMIC" {
		t.Errorf("Faction = %q, want COSMIC", cfg.Agent.Faction)
	}
	if want := filepath.Join(home, ".spacetraders", "token"); cfg.Agent.TokenFile != want {
		t.Errorf("TokenFile = %q, want %q", cfg.Agent.TokenFile, want)
	}
	if cfg.Mock.Addr != ":8089" {
		t.Errorf("Mock.Addr = %q, want :8089", cfg.Mock.Addr)
	}
	if cfg.Mock.RateLimitRPS != 2 || cfg.Mock.RateBurst != 10 {
		t.Errorf("rate limit = %d/%d, want 2/10", cfg.Mock.RateLimitRPS, cfg.Mock.RateBurst)
	}
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeFile(t, home, "st.yaml", strings.Join([]string{
		"api:",
		"  base_url: http://localhost:8089/",
		"  timeout: 3s",
		"agent:",
		"  symbol: BADGER",
		"  faction: void",
		"  token_file: ~/tokens/badger",
		"mock:",
		"  cors_origins: ['*']",
		"",
	}, "\n"))

	cfg, v, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed = %q, want %q", v.ConfigFileUsed(), path)
	}
	if cfg.API.BaseURL != "http://localhost:8089" {
		t.Errorf("BaseURL = %q, trailing slash should be trimmed", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.API.Timeout)
	}
	if cfg.Agent.Symbol != "BADGER" || cfg.Agent.Faction != "VOID" {
		t.Errorf("Agent = %+v", cfg.Agent)
	}
	if want := filepath.Join(home, "tokens", "badger"); cfg.Agent.TokenFile != want {
		t.Errorf("TokenFile = %q, want %q", cfg.Agent.TokenFile, want)
	}
	if len(cfg.Mock.CORSOrigins) != 1 || cfg.Mock.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.Mock.CORSOrigins)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeFile(t, home, "st.yaml", "agent:\n  token: from-file\n")
	t.Setenv("ST_AGENT_TOKEN", "from-env")
	t.Setenv("ST_MOCK_ADDR", "127.0.0.1:9000")

	cfg, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Agent.Token != "from-env" {
		t.Errorf("Token = %q, want from-env", cfg.Agent.Token)
	}
	if cfg.Mock.Addr != "127.0.0.1:9000" {
		t.Errorf("Mock.Addr = %q", cfg.Mock.Addr)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero timeout", "api:\n  timeout: 0s\n", "api.timeout"},
		{"empty base url", "api:\n  base_url: ''\n", "api.base_url"},
		{"bad yaml", "api: [\n", "read config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			path := writeFile(t, home, "st.yaml", tc.body)

			_, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestRead_MissingFileTolerated(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	found, err := config.Read(config.New(""))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if found {
		t.Error("found = true, want false for an empty home")
	}
}
