package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/SpreadSheets600/pomotroid/internal/domain"
)

// SessionCmd manages recorded sessions
type SessionCmd struct {
	Start     SessionStartCmd     `cmd:"start" help:"Record the start of a new session"`
	Complete  SessionCompleteCmd  `cmd:"complete" help:"Mark a session as completed"`
	Interrupt SessionInterruptCmd `cmd:"interrupt" help:"Mark a session as interrupted"`
	Delete    SessionDeleteCmd    `cmd:"del" help:"Delete a session"`
	Clear     SessionClearCmd     `cmd:"clear" help:"Delete all sessions"`
	List      SessionListCmd      `cmd:"list" help:"List all sessions" default:"1"`
}

// SessionStartCmd records the start of a new session
type SessionStartCmd struct {
	Type     string `help:"Session type" enum:"work,short-break,long-break" default:"work"`
	Duration int    `help:"Planned length in minutes" default:"25"`
	Task     string `help:"Associated task name"`
	TaskID   string `help:"Associated task identifier"`
}

// Run executes the start command
func (s *SessionStartCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	session := store.CreateSession(domain.SessionType(s.Type), s.Duration, s.Task, s.TaskID)
	fmt.Printf("✓ Session started: %s (%s, %d min)\n", session.ID, session.Type, session.Duration)
	return nil
}

// SessionCompleteCmd marks a session as completed
type SessionCompleteCmd struct {
	ID string `arg:"" help:"ID of the session to complete"`
}

// Run executes the complete command
func (s *SessionCompleteCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	store.CompleteSession(s.ID, true, "")
	fmt.Printf("✓ Session '%s' completed\n", s.ID)
	return nil
}

// SessionInterruptCmd marks a session as interrupted
type SessionInterruptCmd struct {
	ID     string `arg:"" help:"ID of the session to interrupt"`
	Reason string `help:"Why the session was interrupted" short:"r"`
}

// Run executes the interrupt command
func (s *SessionInterruptCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	store.CompleteSession(s.ID, false, s.Reason)
	fmt.Printf("✓ Session '%s' interrupted\n", s.ID)
	return nil
}

// SessionDeleteCmd deletes a session
type SessionDeleteCmd struct {
	ID    string `arg:"" help:"ID of the session to delete"`
	Force bool   `help:"Skip confirmation prompt" short:"f"`
}

// Run executes the delete command
func (s *SessionDeleteCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	if !s.Force {
		fmt.Printf("Are you sure you want to delete session '%s'? (y/N): ", s.ID)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	store.DeleteSession(s.ID)
	fmt.Printf("✓ Session '%s' deleted\n", s.ID)
	return nil
}

// SessionClearCmd deletes every session
type SessionClearCmd struct {
	Force bool `help:"Skip confirmation prompt" short:"f"`
}

// Run executes the clear command
func (s *SessionClearCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	if !s.Force {
		fmt.Print("Are you sure you want to delete ALL sessions? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	store.ClearAllSessions()
	fmt.Println("✓ All sessions cleared")
	return nil
}

// SessionListCmd lists all sessions
type SessionListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SessionListCmd) Run(cli *CLI) error {
	store, err := cli.openStore()
	if err != nil {
		return err
	}

	sessions := store.AllSessions()

	if s.Format == "json" {
		data, err := json.MarshalIndent(sessions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTARTED\tDURATION\tSTATUS\tTASK")
	for _, sess := range sessions {
		status := "open"
		switch {
		case sess.Completed:
			status = "completed"
		case sess.Interrupted:
			status = "interrupted"
			if sess.InterruptReason != nil {
				status = fmt.Sprintf("interrupted (%s)", *sess.InterruptReason)
			}
		}

		task := ""
		if sess.TaskName != nil {
			task = *sess.TaskName
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d min\t%s\t%s\n",
			sess.ID,
			sess.Type,
			sess.StartTime.Format(time.DateTime),
			sess.Duration,
			status,
			task)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}
