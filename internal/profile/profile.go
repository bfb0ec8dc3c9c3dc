// Package profile maps named planning profiles to their database files.
// Each profile is an independent SQLite file under the data directory,
// so switching profiles switches the whole planning state.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultName is the profile used when none is selected.
	DefaultName = "default"

	filePrefix = "plan__"
	fileSuffix = ".db"
)

var nameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Manager resolves profile names to database paths inside a data dir.
type Manager struct {
	dataDir string
}

func NewManager(dataDir string) *Manager {
	return &Manager{dataDir: dataDir}
}

// Sanitize normalizes a user-supplied profile name to a filesystem-safe
// form. Runs of disallowed characters collapse to a single underscore.
func Sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = nameSanitizer.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return DefaultName
	}
	return name
}

// Path returns the database file path for a profile. The profile does
// not need to exist yet; opening the path creates it.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.dataDir, filePrefix+Sanitize(name)+fileSuffix)
}

// List returns the names of all profiles with a database file, sorted.
// The default profile is always listed even before first use.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{DefaultName}, nil
		}
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	seen := map[string]bool{DefaultName: true}
	names := []string{DefaultName}
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasPrefix(n, filePrefix) || !strings.HasSuffix(n, fileSuffix) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(n, filePrefix), fileSuffix)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a profile's database file is present.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.Path(name))
	return err == nil
}

// Delete removes a profile's database file along with its SQLite WAL
// sidecars. The default profile cannot be deleted.
func (m *Manager) Delete(name string) error {
	clean := Sanitize(name)
	if clean == DefaultName {
		return fmt.Errorf("the %q profile cannot be deleted", DefaultName)
	}
	path := m.Path(clean)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("profile %q not found", clean)
	}
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting profile %q: %w", clean, err)
		}
	}
	return nil
}
