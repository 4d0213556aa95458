// Package state persists the small piece of client state that survives
// restarts: the selected theme name and the admin session token. Everything
// lives in one JSON file read at startup and rewritten on change.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Data is the on-disk shape of the state file.
type Data struct {
	Theme      string `json:"theme,omitempty"`
	AdminToken string `json:"adminToken,omitempty"`
}

// File reads and writes the persisted client state.
type File struct {
	mu   sync.Mutex
	path string
	data Data
}

// Open loads the state file at path, tolerating a missing or empty file.
func Open(path string) (*File, error) {
	f := &File{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return f, nil
		}
		return nil, err
	}
	if len(b) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(b, &f.data); err != nil {
		return nil, err
	}
	return f, nil
}

// Theme returns the persisted theme name, empty when never set.
func (f *File) Theme() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.Theme
}

// SetTheme persists the theme name.
func (f *File) SetTheme(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Theme = name
	return f.save()
}

// AdminToken returns the persisted session token, empty when logged out.
func (f *File) AdminToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.AdminToken
}

// SetAdminToken persists the session token. An empty token logs out.
func (f *File) SetAdminToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.AdminToken = token
	return f.save()
}

// save writes the file atomically via a temp-file rename. Callers hold f.mu.
func (f *File) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
