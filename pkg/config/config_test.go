package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/oaiview/pkg/errors"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Defaults != Default().Defaults {
		t.Errorf("Load() = %+v, want defaults", cfg.Defaults)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_OAI_KEY", "secret")
	path := writeConfig(t, `
[defaults]
rankdir = "lr"
image_format = "SVG"
timeout = "5s"

[endpoints.europeana]
url = "https://api.europeana.eu/oai/record?wskey=${TEST_OAI_KEY}"
format = "edm"

[endpoints.local]
url = "http://localhost:8080/oai"
format = "whatever"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Defaults.RankDir != "LR" || cfg.Defaults.ImageFormat != "svg" {
		t.Errorf("Defaults not normalized: %+v", cfg.Defaults)
	}
	if cfg.Defaults.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Defaults.Timeout)
	}
	if cfg.Defaults.Retries != 8 || cfg.Defaults.Style != "monokai" {
		t.Errorf("unset keys lost their defaults: %+v", cfg.Defaults)
	}
	if got := cfg.Endpoints["europeana"].URL; got != "https://api.europeana.eu/oai/record?wskey=secret" {
		t.Errorf("env not expanded: %q", got)
	}
	if !slices.Equal(cfg.Names(), []string{"europeana", "local"}) {
		t.Errorf("Names() = %v", cfg.Names())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", "[defaults\nrankdir = 1"},
		{"unknown key", "[defaults]\ncolour = \"red\""},
		{"rankdir", "[defaults]\nrankdir = \"BT\""},
		{"image format", "[defaults]\nimage_format = \"gif\""},
		{"style", "[defaults]\nstyle = \"no-such-style\""},
		{"negative retries", "[defaults]\nretries = -1"},
		{"endpoint scheme", "[endpoints.x]\nurl = \"ftp://x.org/oai\""},
		{"endpoint missing url", "[endpoints.x]\nformat = \"edm\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.text))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Defaults.RankDir = "lr"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() rejected lower-case rankdir: %v", err)
	}

	cfg.Defaults.RankDir = "BT"
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Validate() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}

	cfg = Default()
	cfg.Endpoints = map[string]Endpoint{"x": {URL: "ftp://x.org/oai"}}
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Validate() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "/etc/oaiview.toml")
	if p, _ := Path(); p != "/etc/oaiview.toml" {
		t.Errorf("Path() = %q with %s set", p, EnvPath)
	}

	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if p, _ := Path(); p != filepath.Join("/tmp/xdg", appName, "config.toml") {
		t.Errorf("Path() = %q with XDG_CONFIG_HOME set", p)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if p, _ := Path(); p != filepath.Join(home, ".config", appName, "config.toml") {
		t.Errorf("Path() = %q", p)
	}
}

func TestResolve(t *testing.T) {
	cfg := Default()
	cfg.Endpoints["eu"] = Endpoint{URL: "https://api.europeana.eu/oai/record", Format: "edm"}

	tests := []struct {
		input   string
		wantURL string
		wantErr bool
	}{
		{"eu", "https://api.europeana.eu/oai/record", false},
		{"https://example.org/oai", "https://example.org/oai", false},
		{"missing", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ep, err := cfg.Resolve(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidEndpoint) {
				t.Errorf("Resolve(%q) code = %s", tt.input, errors.GetCode(err))
			}
			if ep.URL != tt.wantURL {
				t.Errorf("Resolve(%q).URL = %q, want %q", tt.input, ep.URL, tt.wantURL)
			}
		})
	}
}
