package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalConfigPath(t *testing.T) {
	got := GlobalConfigPath("/home/user/.config")
	want := "/home/user/.config/todomaster/config.toml"
	if got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestStateDir(t *testing.T) {
	got := StateDir("/home/user/.local/state")
	want := "/home/user/.local/state/todomaster"
	if got != want {
		t.Errorf("StateDir() = %q, want %q", got, want)
	}
}

func TestCacheSlotPath(t *testing.T) {
	assert.Equal(t, "/tmp/cache/todos.json", CacheSlotPath("/tmp/cache", "todos"))
}

func TestLogPath(t *testing.T) {
	assert.Equal(t, "/tmp/cache/logs/todo.log", LogPath("/tmp/cache"))
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Zero(t, cfg.Server.Timeout)
	assert.Equal(t, DefaultCacheSlot, cfg.Cache.Slot)
	assert.Empty(t, cfg.Cache.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}
