package cmd_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/gophidget/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitGeneratesReadTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "read.json")

	init := &cmd.ConfigInit{Command: "read", Format: "json", Output: dest}
	require.NoError(t, init.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))

	// Embedded addressing flags are flattened into the template.
	assert.Contains(t, root, "serial")
	assert.Contains(t, root, "timeout")
	assert.EqualValues(t, -1, root["serial"])
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "monitor.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	init := &cmd.ConfigInit{Command: "monitor", Format: "json", Output: dest}
	assert.Error(t, init.Run())

	init.Force = true
	assert.NoError(t, init.Run())
}

func TestConfigInitYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "list.yaml")

	init := &cmd.ConfigInit{Command: "list", Format: "yaml", Output: dest}
	require.NoError(t, init.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wait:")
	assert.Contains(t, string(data), "format:")
}
