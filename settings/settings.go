// Package settings provides the persisted key/value configuration store the
// client reads its video and display options from. Values are stored as
// strings with typed accessors, mirroring how they appear in the on-disk
// JSON file.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// Store is a thread-safe key/value settings store with registered defaults.
// Reads fall back to the default table when a key has not been set.
type Store struct {
	mu       sync.RWMutex
	path     string
	values   map[string]string
	defaults map[string]string
}

// StoreOption is a functional option for configuring a Store.
type StoreOption func(s *Store)

// WithPath sets the file path used by Load and Save.
//
// Parameters:
//   - path: the JSON settings file location
//
// Returns:
//   - StoreOption: option function to apply
func WithPath(path string) StoreOption {
	return func(s *Store) {
		s.path = path
	}
}

// WithDefaults merges the given defaults into the store's default table.
// Later options override earlier entries for the same key.
//
// Parameters:
//   - defaults: key/value pairs used when a key has not been set
//
// Returns:
//   - StoreOption: option function to apply
func WithDefaults(defaults map[string]string) StoreOption {
	return func(s *Store) {
		for k, v := range defaults {
			s.defaults[k] = v
		}
	}
}

// NewStore creates a Store with the built-in client defaults applied, then
// each option in order. The store starts empty; call Load to read persisted
// values.
//
// Parameters:
//   - options: functional options to configure the store
//
// Returns:
//   - *Store: the configured store
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		values:   make(map[string]string),
		defaults: make(map[string]string),
	}
	for k, v := range clientDefaults {
		s.defaults[k] = v
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// DefaultPath returns the per-user settings file location, created under the
// platform config directory.
//
// Returns:
//   - string: the settings file path
//   - error: error if no user config directory is available
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "no user config dir")
	}
	return filepath.Join(dir, "voxen", "settings.json"), nil
}

// Load reads the JSON settings file from the configured path. A missing file
// is not an error: the store simply keeps serving defaults.
//
// Returns:
//   - error: error if the file exists but cannot be read or parsed
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return errors.New("settings: no path configured")
	}
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read settings file")
	}
	loaded := make(map[string]string)
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return errors.Wrap(err, "parse settings file")
	}
	for k, v := range loaded {
		s.values[k] = v
	}
	return nil
}

// Save writes the explicitly-set values (not defaults) to the configured path,
// creating parent directories as needed.
//
// Returns:
//   - error: error if the file cannot be written
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.path == "" {
		return errors.New("settings: no path configured")
	}
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create settings dir")
	}
	return errors.Wrap(os.WriteFile(s.path, raw, 0o644), "write settings file")
}

// Set stores a string value for key.
//
// Parameters:
//   - key: the settings key
//   - value: the raw string value
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the raw string value for key, falling back to the registered
// default, then the empty string.
//
// Parameters:
//   - key: the settings key
//
// Returns:
//   - string: the stored or default value
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.defaults[key]
}

// GetBool returns the value for key interpreted as a boolean. Unparseable
// values read as false.
//
// Parameters:
//   - key: the settings key
//
// Returns:
//   - bool: the parsed value
func (s *Store) GetBool(key string) bool {
	v, err := strconv.ParseBool(s.Get(key))
	if err != nil {
		return false
	}
	return v
}

// GetUint16 returns the value for key interpreted as an unsigned 16-bit
// integer. Unparseable or out-of-range values read as 0.
//
// Parameters:
//   - key: the settings key
//
// Returns:
//   - uint16: the parsed value
func (s *Store) GetUint16(key string) uint16 {
	v, err := strconv.ParseUint(s.Get(key), 10, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}

// GetFloat returns the value for key interpreted as a float64. Unparseable
// values read as 0.
//
// Parameters:
//   - key: the settings key
//
// Returns:
//   - float64: the parsed value
func (s *Store) GetFloat(key string) float64 {
	v, err := strconv.ParseFloat(s.Get(key), 64)
	if err != nil {
		return 0
	}
	return v
}
