package cmd

import (
	"fmt"
	"os"
)

// ImportCmd replaces the sessions document with the contents of a JSON file
type ImportCmd struct {
	File  string `arg:"" help:"Path to the JSON document to import" type:"path"`
	Force bool   `help:"Skip confirmation prompt" short:"f"`
}

// Run executes the import command
func (i *ImportCmd) Run(cli *CLI) error {
	data, err := os.ReadFile(i.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if !i.Force {
		fmt.Print("Importing replaces ALL current sessions. Continue? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	store, err := cli.openStore()
	if err != nil {
		return err
	}

	if err := store.ImportJSON(string(data)); err != nil {
		return fmt.Errorf("failed to import sessions: %w", err)
	}

	fmt.Printf("✓ Imported %s\n", i.File)
	return nil
}
