package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand(t *testing.T) {
	h := newHarness()
	h.cfg.Sources = []string{"/home/user/.config/todomaster/config.toml"}

	err := h.run("config")

	require.NoError(t, err)
	out := h.stdout.String()
	assert.Contains(t, out, "[Loaded from]\n- /home/user/.config/todomaster/config.toml\n")
	assert.Contains(t, out, "- cache: /tmp/todomaster-test/todos.json")
	assert.Contains(t, out, "- log:   /tmp/todomaster-test/logs/todo.log")
	assert.Contains(t, out, "[Effective config]")
	assert.Contains(t, out, "http://localhost:5000")
	assert.Empty(t, h.service.Calls, "config does not contact the service")
}

func TestConfigCommand_DefaultsOnly(t *testing.T) {
	h := newHarness()

	err := h.run("config")

	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "- (defaults only)")
}
