// Package prefs remembers the window geometry between runs.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const prefsFile = "prefs.json"

// Window is the last known window position and size.
type Window struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether w has a usable size.
func (w Window) Valid() bool {
	return w.Width > 0 && w.Height > 0
}

// Prefs is the preferences file.
type Prefs struct {
	Window Window `json:"window"`

	path string
}

// Dir returns the default preferences directory.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "shapeedit")
}

// Load reads the preferences stored in dir. A missing file is not an
// error; it yields empty preferences.
func Load(dir string) (*Prefs, error) {
	if dir == "" {
		dir = Dir()
	}
	p := &Prefs{path: filepath.Join(dir, prefsFile)}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}
	if err := json.Unmarshal(data, p); err != nil {
		return p, fmt.Errorf("parse prefs %s: %w", p.path, err)
	}
	return p, nil
}

// Path is the file the preferences are saved to.
func (p *Prefs) Path() string { return p.path }

// Save writes the preferences, creating the directory if needed.
func (p *Prefs) Save() error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
