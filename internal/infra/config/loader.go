// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/todomaster/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todomaster)
	stateDir      string // Default cache directory when [cache].dir is unset
	explicitPath  string // File passed via --config; must exist when set
}

// NewLoader creates a new Loader using XDG locations.
func NewLoader(explicitPath string) *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		stateDir:      defaultStateDir(),
		explicitPath:  explicitPath,
	}
}

// NewLoaderWithDirs creates a new Loader with custom directories.
// This is useful for testing.
func NewLoaderWithDirs(globalConfDir, stateDir, explicitPath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		stateDir:      stateDir,
		explicitPath:  explicitPath,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// defaultStateDir returns the default directory for the cache and logs.
func defaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// GlobalPath returns the global config file path, or "" when unknown.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// ExplicitPath returns the file passed via --config.
func (l *Loader) ExplicitPath() string {
	return l.explicitPath
}

// Load returns the merged configuration.
// Merge order: default <- global <- explicit (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if path := l.GlobalPath(); path != "" {
		global, err := loadFile(path)
		switch {
		case err == nil:
			base = mergeConfigs(base, global)
			base.Sources = append(base.Sources, path)
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("load global config: %w", err)
		}
	}

	if l.explicitPath != "" {
		explicit, err := loadFile(l.explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", l.explicitPath, err)
		}
		base = mergeConfigs(base, explicit)
		base.Sources = append(base.Sources, l.explicitPath)
	}

	if base.Cache.Dir == "" {
		base.Cache.Dir = l.stateDir
	}
	return base, nil
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "server":
			for k, v := range m {
				switch k {
				case "url":
					if s, ok := v.(string); ok {
						res.Server.URL = strings.TrimSpace(s)
					}
				case "timeout":
					d, err := parseDuration(v)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid [server].timeout: %v", err))
						continue
					}
					res.Server.Timeout = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [server]: %s", k))
				}
			}
		case "cache":
			for k, v := range m {
				switch k {
				case "dir":
					if s, ok := v.(string); ok {
						res.Cache.Dir = expandHome(s)
					}
				case "slot":
					if s, ok := v.(string); ok {
						res.Cache.Slot = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [cache]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseDuration accepts "5s"-style strings and plain integers (seconds).
func parseDuration(v any) (time.Duration, error) {
	switch t := v.(type) {
	case string:
		d, err := time.ParseDuration(t)
		if err != nil {
			return 0, err
		}
		if d < 0 {
			return 0, fmt.Errorf("negative duration %q", t)
		}
		return d, nil
	case int64:
		if t < 0 {
			return 0, fmt.Errorf("negative duration %d", t)
		}
		return time.Duration(t) * time.Second, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Server:   base.Server,
		Cache:    base.Cache,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
		Sources:  append([]string{}, base.Sources...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Server.URL != "" {
		result.Server.URL = override.Server.URL
	}
	if override.Server.Timeout != 0 {
		result.Server.Timeout = override.Server.Timeout
	}
	if override.Cache.Dir != "" {
		result.Cache.Dir = override.Cache.Dir
	}
	if override.Cache.Slot != "" {
		result.Cache.Slot = override.Cache.Slot
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}

// Render encodes cfg as TOML, the same shape Load reads.
func Render(cfg *domain.Config) (string, error) {
	out := struct {
		Server struct {
			URL     string `toml:"url"`
			Timeout string `toml:"timeout"`
		} `toml:"server"`
		Cache domain.CacheConfig `toml:"cache"`
		Log   domain.LogConfig   `toml:"log"`
	}{
		Cache: cfg.Cache,
		Log:   cfg.Log,
	}
	out.Server.URL = cfg.Server.URL
	out.Server.Timeout = cfg.Server.Timeout.String()

	data, err := toml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}
