package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/htmlharvest/internal/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selectors:\n  - \"#title\"\n  - \".price\"\n  - \"a[href]\"\n"), 0o644))

	m, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"#title", ".price", "a[href]"}, m.Selectors)
}

func TestLoad_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selectors: []\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
