package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvServer, "")
	t.Setenv(EnvAgent, "")

	cfg := ResolveConfig("", "")

	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.AgentID != "" {
		t.Errorf("AgentID = %q, want empty", cfg.AgentID)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configData := "server: http://file:8000/api\nagent: file-agent\n"
	if err := os.WriteFile(filepath.Join(home, configFileName), []byte(configData), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// File only.
	t.Setenv(EnvServer, "")
	t.Setenv(EnvAgent, "")
	cfg := ResolveConfig("", "")
	if cfg.ServerURL != "http://file:8000/api" {
		t.Errorf("ServerURL = %q, want file value", cfg.ServerURL)
	}
	if cfg.AgentID != "file-agent" {
		t.Errorf("AgentID = %q, want %q", cfg.AgentID, "file-agent")
	}

	// Environment beats the file.
	t.Setenv(EnvServer, "http://env:8000/api")
	t.Setenv(EnvAgent, "env-agent")
	cfg = ResolveConfig("", "")
	if cfg.ServerURL != "http://env:8000/api" {
		t.Errorf("ServerURL = %q, want env value", cfg.ServerURL)
	}
	if cfg.AgentID != "env-agent" {
		t.Errorf("AgentID = %q, want %q", cfg.AgentID, "env-agent")
	}

	// Flags beat everything.
	cfg = ResolveConfig("http://flag:8000/api", "flag-agent")
	if cfg.ServerURL != "http://flag:8000/api" {
		t.Errorf("ServerURL = %q, want flag value", cfg.ServerURL)
	}
	if cfg.AgentID != "flag-agent" {
		t.Errorf("AgentID = %q, want %q", cfg.AgentID, "flag-agent")
	}
}

func TestResolveConfigTrimsTrailingSlash(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := ResolveConfig("http://localhost:9000/api/", "")
	if cfg.ServerURL != "http://localhost:9000/api" {
		t.Errorf("ServerURL = %q, want trailing slash removed", cfg.ServerURL)
	}
}

func TestResolveConfigBadFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvServer, "")
	t.Setenv(EnvAgent, "")

	if err := os.WriteFile(filepath.Join(home, configFileName), []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// A malformed file falls back to defaults instead of failing.
	cfg := ResolveConfig("", "")
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
}

func TestCachePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := CacheDir()
	if err != nil {
		t.Fatalf("CacheDir() error = %v", err)
	}
	if dir != filepath.Join(home, cacheDirName) {
		t.Errorf("CacheDir() = %q, want under home", dir)
	}

	archive, err := ArchivePath()
	if err != nil {
		t.Fatalf("ArchivePath() error = %v", err)
	}
	if archive != filepath.Join(dir, archiveDBName) {
		t.Errorf("ArchivePath() = %q, want inside cache dir", archive)
	}
}
