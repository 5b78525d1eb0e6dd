package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logbook appends session events to a plain text file so a finished
// schedule can be reconstructed after the terminal closes. Tail feeds
// the log panel at the bottom of the TUI.
type Logbook struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// New creates (or reopens) the journal at the provided path.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logbook: open %s: %w", path, err)
	}
	return &Logbook{path: path, file: f}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the file handle.
func (l *Logbook) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Append writes a single entry to the journal.
func (l *Logbook) Append(level Level, message string) {
	if l == nil || l.file == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf("%s %-5s %s\n",
		time.Now().UTC().Format(time.RFC3339),
		string(level),
		strings.TrimSpace(message),
	)
	_, _ = l.file.WriteString(line)
}

// Info logs an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}

// Toggle records one assignment change on a slot.
func (l *Logbook) Toggle(slot, from, to string) {
	l.Info("Toggle · %s: %s → %s", slot, from, to)
}

// RuleChanged records a rule flipping between pass and fail.
func (l *Logbook) RuleChanged(description string, passed bool) {
	if passed {
		l.Info("Rule satisfied · %s", description)
		return
	}
	l.Warn("Rule broken · %s", description)
}

// Tail returns up to maxLines of the most recent journal entries.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}
