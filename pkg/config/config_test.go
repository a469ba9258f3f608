package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"volslice/pkg/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	require.Equal(t, 5, cfg.Slicing.SliceCount)
	require.Equal(t, 0, cfg.Slicing.Axis)
	require.Equal(t, 0.01, cfg.Slicing.Padding)
	require.Equal(t, 1.0, cfg.Slicing.TimeDelta)
	require.True(t, cfg.Slicing.NearestNeighbor)
	require.Empty(t, cfg.Spatial.Backend)
	require.True(t, cfg.Output.Verbose)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "volslice.yaml")

	cfg := config.DefaultConfig()
	cfg.Slicing.SliceCount = 12
	cfg.Slicing.Axis = 2
	cfg.Slicing.Padding = 0.1
	cfg.Spatial.Backend = "rtree"
	cfg.Output.Verbose = false

	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slicing:\n  sliceCount: 9\n"), 0644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Slicing.SliceCount)
	require.Equal(t, 0.01, cfg.Slicing.Padding, "unset keys keep defaults")
	require.True(t, cfg.Slicing.NearestNeighbor)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slicing: ["), 0644))

	_, err := config.LoadConfig(path)
	require.Error(t, err)
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, config.CreateDefaultConfigFile(path))

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), loaded)
}
