package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/adrg/xdg"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// isolate points the XDG directories at an empty temporary directory so
// that the user's own configuration can't leak into the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload) // runs after the variables below are restored
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	config, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Default()
	if !slices.Equal(config.Moves, want.Moves) {
		t.Fatalf("expected default moves %v, got %v", want.Moves, config.Moves)
	}
	if config.KeyBytes != 32 || config.Encoding != "hex" || config.Rounds != 1 {
		t.Fatalf("unexpected defaults: %+v", config)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "rps.yaml", "moves: [rock, paper, scissors, lizard, spock]\nencoding: base64\n")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(config.Moves) != 5 || config.Moves[4] != "spock" {
		t.Fatalf("expected moves from file, got %v", config.Moves)
	}
	if config.Encoding != "base64" {
		t.Fatalf("expected base64 encoding, got %s", config.Encoding)
	}
	if config.KeyBytes != 32 {
		t.Fatalf("expected default key bytes to be kept, got %d", config.KeyBytes)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, File, "rounds: 3\n")

	config, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if config.Rounds != 3 {
		t.Fatalf("expected 3 rounds from the XDG config file, got %d", config.Rounds)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "rps.yaml", "key-bytes: 48\nrounds: 2\n")

	t.Setenv("RPS_MOVES", "a,b,c,d,e")
	t.Setenv("RPS_ROUNDS", "7")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !slices.Equal(config.Moves, []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("expected moves from env, got %v", config.Moves)
	}
	if config.Rounds != 7 {
		t.Fatalf("expected rounds from env, got %d", config.Rounds)
	}
	if config.KeyBytes != 48 {
		t.Fatalf("expected key bytes from file, got %d", config.KeyBytes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "rps.yaml", "moves: [rock\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadBadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("RPS_KEY_BYTES", "lots")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for a non-numeric RPS_KEY_BYTES")
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"short key":        func(c *Config) { c.KeyBytes = 16 },
		"no rounds":        func(c *Config) { c.Rounds = 0 },
		"unknown encoding": func(c *Config) { c.Encoding = "base32" },
	}

	for name, mutate := range tests {
		config := Default()
		mutate(&config)
		if err := config.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}
}

func TestSchemeAndEncoding(t *testing.T) {
	config := Default()
	config.KeyBytes = 64
	config.Encoding = "base64"

	key, err := config.Scheme().GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if len(key) != 64 {
		t.Fatalf("expected 64 byte key, got %d", len(key))
	}

	encoding, err := config.DigestEncoding()
	if err != nil {
		t.Fatalf("digest encoding: %v", err)
	}
	if encoding.Name() != "base64" {
		t.Fatalf("expected base64, got %s", encoding.Name())
	}
}
