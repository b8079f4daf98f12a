package internal

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultServerURL is used when no server is configured anywhere
	DefaultServerURL = "http://localhost:8000/api"

	// EnvServer and EnvAgent override the config file
	EnvServer = "HIVE_SESSION_SERVER"
	EnvAgent  = "HIVE_SESSION_AGENT"

	configFileName = ".hive-session.yaml"
	cacheDirName   = ".hive-session-cache"
	archiveDBName  = "archive.db"
)

// Config holds the resolved connection settings for a backend server
type Config struct {
	ServerURL string `yaml:"server"`
	AgentID   string `yaml:"agent"`
}

// ResolveConfig resolves the server URL and default agent id.
// Precedence: explicit arguments (flags), environment variables, the
// ~/.hive-session.yaml config file, then built-in defaults. Missing or
// unreadable config sources degrade to the next source, never to an error.
func ResolveConfig(serverFlag, agentFlag string) Config {
	cfg := Config{ServerURL: DefaultServerURL}

	if path, err := ConfigPath(); err == nil {
		fileCfg, err := loadConfigFile(path)
		if err == nil {
			if fileCfg.ServerURL != "" {
				cfg.ServerURL = fileCfg.ServerURL
			}
			if fileCfg.AgentID != "" {
				cfg.AgentID = fileCfg.AgentID
			}
		} else if !os.IsNotExist(err) {
			LogWarn("Failed to read config file %s: %v", path, err)
		}
	}

	if v := os.Getenv(EnvServer); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvAgent); v != "" {
		cfg.AgentID = v
	}

	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	if agentFlag != "" {
		cfg.AgentID = agentFlag
	}

	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return cfg
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ConfigPath returns the path to the user's config file
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// CacheDir returns the directory holding cached transcripts and the archive
func CacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, cacheDirName), nil
}

// ArchivePath returns the path to the archive database
func ArchivePath() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, archiveDBName), nil
}
