package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "json", cfg.Store)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, "ml", cfg.VolumeUnit)
	assert.Equal(t, time.Sunday, cfg.WeekStartDay())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
week_start: monday
volume_unit: oz
store: sqlite
data_path: /tmp/diary.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, cfg.WeekStartDay())
	assert.Equal(t, "oz", cfg.VolumeUnit)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "/tmp/diary.db", cfg.SlotPath())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "volume_unit: cup\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cup", cfg.VolumeUnit)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, "json", cfg.Store)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "week_start: someday\n"))
	assert.ErrorContains(t, err, "week_start")

	_, err = Load(writeConfig(t, "volume_unit: gallon\n"))
	assert.ErrorContains(t, err, "volume_unit")

	_, err = Load(writeConfig(t, "week_start: [not, a, string\n"))
	assert.Error(t, err)
}

func TestSlotPathDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "bladder-buddy-events.json", filepath.Base(cfg.SlotPath()))

	cfg.Store = "sqlite"
	assert.Equal(t, "bladder-buddy-events.db", filepath.Base(cfg.SlotPath()))
}
