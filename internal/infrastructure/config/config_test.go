package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Debug {
		t.Error("Debug defaulted to true")
	}
	if cfg.MaxMessageSize != 64*1024 {
		t.Errorf("MaxMessageSize = %d, want 65536", cfg.MaxMessageSize)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v, want empty", cfg.AllowedOrigins)
	}
}

func TestInitReadsFileWithEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	file := filepath.Join(t.TempDir(), "hub.toml")
	contents := "port = 9000\ndebug = true\n"
	if err := os.WriteFile(file, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CHATHUB_PORT", "9100")

	if err := Init(file); err != nil {
		t.Fatalf("Init: %v", err)
	}
	cfg := Load()

	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want env override 9100", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want file value true")
	}
}

func TestInitMissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := Init(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Init with a missing file returned nil error")
	}
}
