// internal/config/config.go
//
// This package handles the .classboard directory and the roster
// configuration. Every project that runs classboard gets a .classboard/
// folder with a config.yaml describing the classes and the teacher ring;
// the defaults reproduce the standard Y13/Y12 economics timetable.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BoardDir is the name of the directory we create in each project.
const BoardDir = ".classboard"

const defaultRosterYAML = `# classboard roster configuration
version: 1

# Classes in display order. The year group is derived from the name by
# trimming the trailing section letter (Y13a -> Y13); the first year
# group forms the left band of the layout diagram.
classes:
  - Y13a
  - Y13b
  - Y13c
  - Y12a
  - Y12b
  - Y12c
  - Y12d
  - Y12e

# The teacher ring, in the order clicking cycles through it. The first
# entry is the unassigned sentinel and should keep a neutral color.
teachers:
  - name: None
    color: "#CCCCCC"
  - name: CFE
    color: "#1E90FF"
  - name: AHA
    color: "#FF4500"
  - name: TOB
    color: "#32CD32"
`

// TeacherRef declares one teacher ring entry inside config.yaml.
type TeacherRef struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// RosterConfig models .classboard/config.yaml.
type RosterConfig struct {
	Version  int          `yaml:"version"`
	Classes  []string     `yaml:"classes"`
	Teachers []TeacherRef `yaml:"teachers"`
}

// Config holds the runtime configuration for classboard.
type Config struct {
	// ProjectDir is the directory where the user ran `classboard` from.
	ProjectDir string

	// BoardProjectDir is ProjectDir/.classboard
	BoardProjectDir string

	Roster RosterConfig
}

// InitBoardDir creates the .classboard directory structure in the given
// project directory and writes the default roster on first run.
//
// Structure created:
// .classboard/
// ├── config.yaml   <- Roster: classes and the teacher ring
// └── logs/         <- Session journals
func InitBoardDir(projectDir string) error {
	boardDir := filepath.Join(projectDir, BoardDir)
	if err := os.MkdirAll(filepath.Join(boardDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureRosterConfig(filepath.Join(boardDir, "config.yaml"))
}

// ensureRosterConfig writes the bundled default roster if no config
// exists yet, so users always have a file to edit.
func ensureRosterConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	return os.WriteFile(path, []byte(defaultRosterYAML), 0o644)
}

// NewConfig creates a Config populated from the project's roster file,
// falling back to the bundled defaults when the file is absent.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:      projectDir,
		BoardProjectDir: filepath.Join(projectDir, BoardDir),
		Roster:          defaultRosterConfig(),
	}
	if err := cfg.loadRosterConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.BoardProjectDir, "logs")
}

// RosterConfigPath returns the on-disk location for the roster file.
func (c *Config) RosterConfigPath() string {
	return filepath.Join(c.BoardProjectDir, "config.yaml")
}

func (c *Config) loadRosterConfig() error {
	path := c.RosterConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var roster RosterConfig
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := roster.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	c.Roster = roster
	return nil
}

func defaultRosterConfig() RosterConfig {
	var roster RosterConfig
	// The bundled YAML is the single source of truth for the defaults.
	if err := yaml.Unmarshal([]byte(defaultRosterYAML), &roster); err != nil {
		panic(fmt.Sprintf("config: bundled default roster is invalid: %v", err))
	}
	return roster
}

func (r RosterConfig) validate() error {
	if len(r.Classes) == 0 {
		return fmt.Errorf("at least one class is required")
	}
	seenClass := make(map[string]struct{}, len(r.Classes))
	for _, cls := range r.Classes {
		name := strings.TrimSpace(cls)
		if name == "" {
			return fmt.Errorf("class names must not be empty")
		}
		if _, ok := seenClass[name]; ok {
			return fmt.Errorf("duplicate class %q", name)
		}
		seenClass[name] = struct{}{}
	}
	if len(r.Teachers) < 2 {
		return fmt.Errorf("the teacher ring needs the unassigned sentinel plus at least one teacher")
	}
	seenTeacher := make(map[string]struct{}, len(r.Teachers))
	for _, t := range r.Teachers {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return fmt.Errorf("teacher names must not be empty")
		}
		if _, ok := seenTeacher[name]; ok {
			return fmt.Errorf("duplicate teacher %q", name)
		}
		seenTeacher[name] = struct{}{}
		if strings.TrimSpace(t.Color) == "" {
			return fmt.Errorf("teacher %q needs a display color", name)
		}
	}
	return nil
}
