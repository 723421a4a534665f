package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/mouse-away/internal/catalog"
	"github.com/iburimskiy/mouse-away/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestHooksList(t *testing.T) {
	out, err := execute(t, "hooks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "mouse-away")
	assert.Contains(t, out, "MouseAway")
}

func TestHooksShow(t *testing.T) {
	out, err := execute(t, "hooks", "show", "mouse-away")
	require.NoError(t, err)
	assert.Contains(t, out, "MouseAway (mouse-away)")
	assert.Contains(t, out, "Checkout")
}

func TestHooksShow_Unknown(t *testing.T) {
	_, err := execute(t, "hooks", "show", "use-magnet")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestHooksShow_NeedsID(t *testing.T) {
	_, err := execute(t, "hooks", "show")
	assert.Error(t, err)
}

func TestConfig_Defaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "radius: 120")
	assert.Contains(t, out, "strength: 180")
	assert.Contains(t, out, "bounds: container")
}

func TestConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repulsion:\n  radius: 140\n"), 0o600))
	t.Setenv("MOUSEAWAY_REPULSION_STRENGTH", "220")

	out, err := execute(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "radius: 140")
	assert.Contains(t, out, "strength: 220")
}

func TestConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repulsion:\n  bounds: sideways\n"), 0o600))

	_, err := execute(t, "--config", path, "config")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfig_MissingFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "config")
	assert.Error(t, err)
}
