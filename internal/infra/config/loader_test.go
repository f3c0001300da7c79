package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todomaster/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	stateDir := t.TempDir()
	loader := NewLoaderWithDirs(t.TempDir(), stateDir, "")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultServerURL, cfg.Server.URL)
	assert.Zero(t, cfg.Server.Timeout)
	assert.Equal(t, stateDir, cfg.Cache.Dir)
	assert.Equal(t, domain.DefaultCacheSlot, cfg.Cache.Slot)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
	assert.Empty(t, cfg.Sources)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[server]
url = "https://todo.example.com/api"
timeout = "5s"

[cache]
slot = "work"

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithDirs(globalDir, t.TempDir(), "").Load()
	require.NoError(t, err)

	assert.Equal(t, "https://todo.example.com/api", cfg.Server.URL)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "work", cfg.Cache.Slot)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_ExplicitOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[server]
url = "http://global:5000"
timeout = 10

[log]
level = "warn"
`)
	explicit := writeConfig(t, t.TempDir(), `
[server]
url = "http://explicit:5000"
`)

	cfg, err := NewLoaderWithDirs(globalDir, t.TempDir(), explicit).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://explicit:5000", cfg.Server.URL)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout, "unset keys keep the global value")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{filepath.Join(globalDir, domain.ConfigFileName), explicit}, cfg.Sources)
}

func TestLoader_Load_ExplicitMissing(t *testing.T) {
	loader := NewLoaderWithDirs(t.TempDir(), t.TempDir(), filepath.Join(t.TempDir(), "nope.toml"))

	_, err := loader.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `[server`)

	_, err := NewLoaderWithDirs(globalDir, t.TempDir(), "").Load()

	assert.Error(t, err)
}

func TestLoader_Load_Warnings(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[server]
url = "http://localhost:5000"
retries = 3
timeout = "soon"

[cache]
compress = true

[theme]
color = "blue"
`)

	cfg, err := NewLoaderWithDirs(globalDir, t.TempDir(), "").Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid [server].timeout: time: invalid duration \"soon\"",
		"unknown key in [cache]: compress",
		"unknown key in [server]: retries",
		"unknown section: theme",
	}, cfg.Warnings)
}

func TestLoader_Load_CacheDirOverride(t *testing.T) {
	globalDir := t.TempDir()
	cacheDir := t.TempDir()
	writeConfig(t, globalDir, "[cache]\ndir = \""+filepath.ToSlash(cacheDir)+"\"\n")

	cfg, err := NewLoaderWithDirs(globalDir, t.TempDir(), "").Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.ToSlash(cacheDir), filepath.ToSlash(cfg.Cache.Dir))
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   any
		name    string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: "1m30s", want: 90 * time.Second},
		{name: "integer seconds", input: int64(3), want: 3 * time.Second},
		{name: "zero", input: "0s", want: 0},
		{name: "negative", input: "-1s", wantErr: true},
		{name: "negative integer", input: int64(-1), wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_ReadableByLoader(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Server.Timeout = 3 * time.Second
	cfg.Cache.Dir = "/var/lib/todo"

	out, err := Render(cfg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &raw))
	got := convertRawToDomainConfig(raw)
	assert.Empty(t, got.Warnings)
	assert.Equal(t, cfg.Server, got.Server)
	assert.Equal(t, cfg.Cache, got.Cache)
	assert.Equal(t, cfg.Log, got.Log)
}
