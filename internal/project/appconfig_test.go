package project

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultAppConfig(), cfg)
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.json")

	cfg := DefaultAppConfig()
	cfg.OutputDir = "/tmp/plans"
	cfg.AddRecentLayout("/tmp/plans/a.layout.json")
	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAddRecentLayout_DeduplicatesAndPromotes(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentLayout("a.json")
	cfg.AddRecentLayout("b.json")
	cfg.AddRecentLayout("a.json")

	assert.Equal(t, []string{"a.json", "b.json"}, cfg.RecentLayouts)
}

func TestAddRecentLayout_CapsAtTen(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentLayout(fmt.Sprintf("layout-%d.json", i))
	}

	assert.Len(t, cfg.RecentLayouts, 10)
	assert.Equal(t, "layout-14.json", cfg.RecentLayouts[0])
}
