// internal/tui/app.go
//
// This is the main TUI for classboard.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// Every keypress mutates the board inside Update and the next View is
// rendered entirely from the mutated board, so the screen can never show
// stale assignments.

package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/classboard/internal/config"
	"github.com/kingrea/classboard/internal/logbook"
	"github.com/kingrea/classboard/internal/schedule"
)

// unitRows is the button grid from top to bottom: Macro row, Micro row.
var unitRows = []schedule.Unit{schedule.UnitMacro, schedule.UnitMicro}

// keyMap declares every binding the dashboard understands.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Cycle key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "macro row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "micro row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous class"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next class"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "cycle teacher"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp satisfies help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Cycle, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Cycle, k.Quit},
	}
}

// App is the main application model. In bubbletea, this holds ALL state:
// the assignment board, the cursor over the button grid, and the journal.
type App struct {
	config  *config.Config
	board   *schedule.Board
	logbook *logbook.Logbook
	keys    keyMap
	help    help.Model

	// Cursor over the 2-row button grid. Row 0 is Macro, row 1 Micro.
	cursorRow int
	cursorCol int

	statusMsg  string
	lastReport schedule.Report

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance for one interactive session.
func NewApp(projectDir string) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	ring := make([]schedule.Teacher, 0, len(cfg.Roster.Teachers))
	for _, t := range cfg.Roster.Teachers {
		ring = append(ring, schedule.Teacher{Name: t.Name, Color: t.Color})
	}
	board := schedule.NewBoard(cfg.Roster.Classes, ring)

	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "session.log"))
	if err != nil {
		return nil, err
	}
	lb.Info("Session opened · %d classes · %d ring entries", len(cfg.Roster.Classes), len(ring))

	return &App{
		config:     cfg,
		board:      board,
		logbook:    lb,
		keys:       defaultKeyMap(),
		help:       help.New(),
		statusMsg:  "Move the cursor and press enter to cycle teachers",
		lastReport: board.Check(),
	}, nil
}

// Board exposes the assignment state backing the view.
func (a *App) Board() *schedule.Board {
	return a.board
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.logbook.Info("Session closed")
			_ = a.logbook.Close()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Up):
			a.cursorRow = 0
		case key.Matches(msg, a.keys.Down):
			a.cursorRow = len(unitRows) - 1
		case key.Matches(msg, a.keys.Left):
			if a.cursorCol > 0 {
				a.cursorCol--
			}
		case key.Matches(msg, a.keys.Right):
			if a.cursorCol < len(a.board.Classes())-1 {
				a.cursorCol++
			}
		case key.Matches(msg, a.keys.Cycle):
			a.cycleSelected()
		}
	}

	return a, nil
}

// cursorSlot returns the slot currently under the cursor.
func (a *App) cursorSlot() schedule.Slot {
	return schedule.Slot{
		Class: a.board.Classes()[a.cursorCol],
		Unit:  unitRows[a.cursorRow],
	}
}

// cycleSelected advances the slot under the cursor to the next teacher
// and journals the toggle plus any rule transitions it caused.
func (a *App) cycleSelected() {
	slot := a.cursorSlot()
	prev := a.board.Teacher(slot.Class, slot.Unit)
	next := a.board.Cycle(slot.Class, slot.Unit)
	a.statusMsg = fmt.Sprintf("%s: %s → %s", slot, prev.Name, next.Name)
	a.logbook.Toggle(slot.String(), prev.Name, next.Name)

	report := a.board.Check()
	for i, result := range report.Results {
		if result.Passed != a.lastReport.Results[i].Passed {
			a.logbook.RuleChanged(result.Description, result.Passed)
		}
	}
	a.lastReport = report
}
