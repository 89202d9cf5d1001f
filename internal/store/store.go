// Package store persists scalar scores on disk, one TOML file per key.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrNoScore is returned by Load when nothing has been saved under a key yet.
var ErrNoScore = errors.New("store: no score saved")

// record is the on-disk layout of a score file.
type record struct {
	Key       string    `toml:"key"`
	Value     float64   `toml:"value"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// Manager handles save/load of scores under a base directory.
type Manager struct {
	basePath string
	mu       sync.Mutex
}

// NewManager creates a manager with the given base directory.
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a key's file.
func (m *Manager) FilePath(key string) string {
	return filepath.Join(m.basePath, key+".toml")
}

// Load reads the value stored under key.
func (m *Manager) Load(key string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(key)
}

// SaveIfHigher stores value under key only when it beats the stored value.
// It returns the best value now on disk and whether value was written.
// A missing key counts as no score; an unreadable file is left untouched.
func (m *Manager) SaveIfHigher(key string, value float64) (best float64, saved bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.load(key)
	switch {
	case errors.Is(err, ErrNoScore):
	case err != nil:
		return 0, false, err
	case value <= stored:
		return stored, false, nil
	}

	if err := m.save(key, value); err != nil {
		return stored, false, err
	}
	return value, true, nil
}

func (m *Manager) load(key string) (float64, error) {
	var rec record
	if _, err := toml.DecodeFile(m.FilePath(key), &rec); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNoScore
		}
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	return rec.Value, nil
}

// save replaces the file for key through a temp file and rename.
func (m *Manager) save(key string, value float64) error {
	if err := os.MkdirAll(m.basePath, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(m.basePath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	rec := record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if err := toml.NewEncoder(tmp).Encode(rec); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), m.FilePath(key)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
