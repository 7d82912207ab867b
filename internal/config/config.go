package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var DefaultProdPatterns = []string{"prod", "production", "prd", "live"}

const (
	defaultPodsTTL         = 5 * time.Second
	defaultNamespacesTTL   = 30 * time.Second
	defaultShell           = "/bin/sh"
	defaultTailLines       = 200
	defaultSessionCapacity = 64
	defaultSessionTTL      = 30 * time.Minute
)

// AppConfig holds all configuration for podterm.
type AppConfig struct {
	ProdPatterns       []string      `yaml:"prod_patterns"`
	ReadonlyNamespaces []string      `yaml:"readonly_namespaces"`
	Cache              CacheConfig   `yaml:"cache"`
	Exec               ExecConfig    `yaml:"exec"`
	Logs               LogsConfig    `yaml:"logs"`
	Sessions           SessionConfig `yaml:"sessions"`
	Log                LogConfig     `yaml:"log"`
}

// CacheConfig holds TTL settings for cached resources.
type CacheConfig struct {
	PodsTTL       time.Duration `yaml:"pods"`
	NamespacesTTL time.Duration `yaml:"namespaces"`
}

// ExecConfig holds exec/shell settings.
type ExecConfig struct {
	Shell string `yaml:"shell"`
}

// LogsConfig controls the container log view.
type LogsConfig struct {
	TailLines int64 `yaml:"tail_lines"`
}

// SessionConfig bounds the in-memory session cache.
type SessionConfig struct {
	Capacity int           `yaml:"capacity"`
	TTL      time.Duration `yaml:"ttl"`
}

// LogConfig controls the application's own diagnostic log. The TUI owns
// stdout, so logs only go to a file.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ProdPatterns:       DefaultProdPatterns,
		ReadonlyNamespaces: nil,
		Cache: CacheConfig{
			PodsTTL:       defaultPodsTTL,
			NamespacesTTL: defaultNamespacesTTL,
		},
		Exec: ExecConfig{
			Shell: defaultShell,
		},
		Logs: LogsConfig{
			TailLines: defaultTailLines,
		},
		Sessions: SessionConfig{
			Capacity: defaultSessionCapacity,
			TTL:      defaultSessionTTL,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.config/podterm/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "podterm", "config.yaml"), nil
}

// LoadConfig loads from the default path.
func LoadConfig() (*AppConfig, error) {
	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom loads config from a specific file path.
// Returns defaults if the file does not exist.
func LoadConfigFrom(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for zero values
	if len(cfg.ProdPatterns) == 0 {
		cfg.ProdPatterns = DefaultProdPatterns
	}
	if cfg.Cache.PodsTTL == 0 {
		cfg.Cache.PodsTTL = defaultPodsTTL
	}
	if cfg.Cache.NamespacesTTL == 0 {
		cfg.Cache.NamespacesTTL = defaultNamespacesTTL
	}
	if cfg.Exec.Shell == "" {
		cfg.Exec.Shell = defaultShell
	}
	if cfg.Logs.TailLines <= 0 {
		cfg.Logs.TailLines = defaultTailLines
	}
	if cfg.Sessions.Capacity <= 0 {
		cfg.Sessions.Capacity = defaultSessionCapacity
	}
	if cfg.Sessions.TTL == 0 {
		cfg.Sessions.TTL = defaultSessionTTL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsReadonlyNamespace checks if a namespace matches any readonly pattern.
// Supports glob matching (e.g. "openshift-*").
func IsReadonlyNamespace(namespace string, patterns []string) bool {
	if namespace == "" || len(patterns) == 0 {
		return false
	}
	for _, p := range patterns {
		matched, err := filepath.Match(p, namespace)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// IsProdNamespace checks if a namespace name matches production patterns.
// Matching is done by segment (split on -._) to avoid false positives
// like "product-api" matching "prod".
func IsProdNamespace(namespace string, patterns []string) bool {
	if len(patterns) == 0 {
		patterns = DefaultProdPatterns
	}
	ns := strings.ToLower(namespace)
	segments := splitSegments(ns)

	for _, p := range patterns {
		p = strings.ToLower(p)
		for _, seg := range segments {
			if seg == p {
				return true
			}
		}
	}
	return false
}

// splitSegments splits a namespace name on common separators.
func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '.' || r == '_'
	})
}
