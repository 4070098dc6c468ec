package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SpreadSheets600/pomotroid/internal/paths"
)

// Settings represents the structure of $POMOTROID_HOME/settings.json
type Settings struct {
	DataFile         string `json:"data_file,omitempty"`
	Debug            *bool  `json:"debug,omitempty"`
	MaxLogFiles      *int   `json:"max_log_files,omitempty"`
	HeatmapWeeks     *int   `json:"heatmap_weeks,omitempty"`
	InterruptionDays *int   `json:"interruption_days,omitempty"`
	TrendDays        *int   `json:"trend_days,omitempty"`
	TaskDays         *int   `json:"task_days,omitempty"`
}

// settingsPathFunc returns the path to the settings file.
// Can be overridden in tests
var settingsPathFunc = paths.GetSettingsPath

// LoadSettings loads settings from $POMOTROID_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := settingsPathFunc()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DataFile != "" {
		settings.DataFile = paths.ExpandPath(settings.DataFile)
	}

	return &settings, nil
}
