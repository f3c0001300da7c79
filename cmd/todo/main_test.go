package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"--version"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "todo version dev")
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"frobnicate"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	err := run([]string{"--config", "/nonexistent/todo.toml", "list"}, &stdout, &stderr)

	assert.Error(t, err)
}
