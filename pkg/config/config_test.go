package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	configDir := GetConfigDir()
	expectedDir := filepath.Join(tempDir, "custom", "path")

	if configDir != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, configDir)
	}

	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestGetCredentialsPath validates the credentials path lives in the config dir
func TestGetCredentialsPath(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	credsPath := GetCredentialsPath()
	if credsPath == "" {
		t.Fatal("Credentials path should not be empty")
	}
	if filepath.Dir(credsPath) != GetConfigDir() {
		t.Errorf("Credentials should live in the config dir, got %s", credsPath)
	}
}

// TestDefaults validates default configuration values
func TestDefaults(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if GetString("api.base_url") == "" {
		t.Error("api.base_url should have a default")
	}
	if GetInt("api.timeout") <= 0 {
		t.Error("api.timeout should have a positive default")
	}
	if GetString("output.format") != "text" {
		t.Errorf("Expected default output format text, got %s", GetString("output.format"))
	}
	if GetInt("forum.visible_comments") != 3 {
		t.Errorf("Expected 3 visible comments by default, got %d", GetInt("forum.visible_comments"))
	}
}

// TestSetString validates writing a value back to the config file
func TestSetString(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if err := SetString("output.format", "json"); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}
	if GetString("output.format") != "json" {
		t.Errorf("Expected json, got %s", GetString("output.format"))
	}
}
