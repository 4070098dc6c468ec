package paths

import (
	"os"
	"path/filepath"
)

// SessionsFileName is the conventional name of the persisted document.
const SessionsFileName = "pomodoro-sessions.json"

// GetPomotroidHome returns POMOTROID_HOME or ~/.pomotroid default
func GetPomotroidHome() string {
	home := os.Getenv("POMOTROID_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".pomotroid"
		}
		return filepath.Join(homeDir, ".pomotroid")
	}
	return ExpandPath(home)
}

// GetSessionsFilePath returns $POMOTROID_HOME/pomodoro-sessions.json
func GetSessionsFilePath() string {
	return filepath.Join(GetPomotroidHome(), SessionsFileName)
}

// GetSettingsPath returns $POMOTROID_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPomotroidHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
