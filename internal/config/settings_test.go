package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestSettings overrides settingsPathFunc for testing
func setupTestSettings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")

	orig := settingsPathFunc
	settingsPathFunc = func() string { return path }
	t.Cleanup(func() { settingsPathFunc = orig })

	return path
}

func TestLoadSettings_MissingFileIsNotAnError(t *testing.T) {
	setupTestSettings(t)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesValues(t *testing.T) {
	path := setupTestSettings(t)
	content := `{
		"data_file": "/tmp/sessions.json",
		"debug": true,
		"heatmap_weeks": 8,
		"trend_days": 14
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sessions.json", settings.DataFile)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.HeatmapWeeks)
	assert.Equal(t, 8, *settings.HeatmapWeeks)
	require.NotNil(t, settings.TrendDays)
	assert.Equal(t, 14, *settings.TrendDays)
	assert.Nil(t, settings.MaxLogFiles)
}

func TestLoadSettings_InvalidJSONIsAnError(t *testing.T) {
	path := setupTestSettings(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestLoadSettings_ExpandsDataFilePath(t *testing.T) {
	path := setupTestSettings(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"data_file": "~/sessions.json"}`), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sessions.json"), settings.DataFile)
}
