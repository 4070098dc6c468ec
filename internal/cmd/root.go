package cmd

import (
	"fmt"
	"os"

	"github.com/SpreadSheets600/pomotroid/internal/adapters/storage"
	"github.com/SpreadSheets600/pomotroid/internal/application"
	"github.com/SpreadSheets600/pomotroid/internal/config"
	"github.com/SpreadSheets600/pomotroid/internal/logging"
	"github.com/SpreadSheets600/pomotroid/internal/paths"

	"github.com/alecthomas/kong"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DataFile    string           `help:"Path to the sessions JSON file" type:"path" env:"POMOTROID_DATA_FILE"`

	Session SessionCmd `cmd:"session" help:"Record and manage pomodoro sessions"`
	Stats   StatsCmd   `cmd:"stats" help:"Show reports derived from recorded sessions"`
	Export  ExportCmd  `cmd:"export" help:"Export the full sessions document as JSON"`
	Import  ImportCmd  `cmd:"import" help:"Import a sessions document, replacing all current data"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.DataFile == "" {
			if _, hasEnv := os.LookupEnv("POMOTROID_DATA_FILE"); !hasEnv {
				if c.settings.DataFile != "" {
					c.DataFile = c.settings.DataFile
				}
			}
		}

		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("POMOTROID_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("POMOTROID_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("POMOTROID_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("POMOTROID_DEBUG_FILE", logFilePath)
		}
	}

	return nil
}

// dataFilePath resolves the sessions file location after flag/settings precedence.
func (c *CLI) dataFilePath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	return paths.GetSessionsFilePath()
}

// openStore opens the session store backing this invocation. The store and
// the services reading from it are constructed once here and passed down;
// there is no hidden global instance.
func (c *CLI) openStore() (*storage.FileStore, error) {
	store, err := storage.NewFileStore(c.dataFilePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open sessions file: %w", err)
	}
	return store, nil
}

// newStatistics builds the analyzer on top of the store's query surface.
func (c *CLI) newStatistics() (*application.StatisticsService, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	return application.NewStatisticsService(store), nil
}
