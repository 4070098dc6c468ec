package cmd

import (
	"fmt"
	"os"
)

// ExportCmd writes the full sessions document as pretty-printed JSON
type ExportCmd struct {
	Output string `help:"Write to a file instead of stdout" short:"o" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	data, err := store.ExportJSON()
	if err != nil {
		return fmt.Errorf("failed to export sessions: %w", err)
	}

	if e.Output == "" {
		fmt.Println(data)
		return nil
	}

	if err := os.WriteFile(e.Output, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", e.Output)
	return nil
}
