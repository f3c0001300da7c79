package domain

import (
	"path/filepath"
	"time"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"` // Problems found while loading
	Sources  []string     `toml:"-"` // Files merged into this config, in order
	Server   ServerConfig `toml:"server"`
	Cache    CacheConfig  `toml:"cache"`
	Log      LogConfig    `toml:"log"`
}

// ServerConfig holds settings for the remote task service from [server] section.
type ServerConfig struct {
	URL     string        `toml:"url"`               // Base URL of the task service
	Timeout time.Duration `toml:"timeout,omitempty"` // HTTP client timeout (0 = none)
}

// CacheConfig holds settings for the local offline cache from [cache] section.
type CacheConfig struct {
	Dir  string `toml:"dir,omitempty"`  // Directory holding cache slots (empty = state dir)
	Slot string `toml:"slot,omitempty"` // Slot name; the file is <dir>/<slot>.json
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultServerURL = "http://localhost:5000"
	DefaultCacheSlot = "todos"
	DefaultLogLevel  = "info"
)

// Directory and file names for todomaster.
const (
	AppDirName     = "todomaster"  // Directory name under XDG config/state homes
	ConfigFileName = "config.toml" // Config file name
	LogFileName    = "todo.log"    // Log file name
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{URL: DefaultServerURL},
		Cache:  CacheConfig{Slot: DefaultCacheSlot},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// StateDir returns the directory holding the cache and logs.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// CacheSlotPath returns the file backing a cache slot.
func CacheSlotPath(cacheDir, slot string) string {
	return filepath.Join(cacheDir, slot+".json")
}

// LogPath returns the path to the log file.
func LogPath(cacheDir string) string {
	return filepath.Join(cacheDir, "logs", LogFileName)
}
