// cmd/classboard/main.go
//
// This is the entry point for the classboard dashboard.
//
// Flow:
// 1. Initialize the .classboard folder in the current directory
// 2. Load the roster configuration (or write the default on first run)
// 3. Launch the full-screen TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/classboard/internal/config"
	"github.com/kingrea/classboard/internal/tui"
)

func main() {
	// The current working directory is the "project" whose roster we use.
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitBoardDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .classboard directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// tea.NewProgram creates a new bubbletea application.
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits.
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
