package confloader

import (
	"fmt"
	"maps"
	"slices"

	"github.com/knadh/koanf/v2"
)

// Store holds the merged configuration together with the environment
// metadata that drives file filtering.
//
// A Store is not safe for concurrent use.
type Store struct {
	data         map[string]any
	environment  string
	possibleEnvs []string
	requiredKeys []string
	directory    string
}

// NewStore returns an empty store with no directory set.
func NewStore() *Store {
	return &Store{
		data:         make(map[string]any),
		requiredKeys: []string{},
	}
}

// Configuration returns a shallow copy of the merged configuration.
func (s *Store) Configuration() map[string]any {
	return maps.Clone(s.data)
}

// Get returns the value stored under a top-level key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Keys returns the top-level keys in sorted order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.data))
}

// SetEnvironment sets the active environment. An empty name means unset.
func (s *Store) SetEnvironment(env string) *Store {
	s.environment = env
	return s
}

// Environment returns the active environment, or "" when unset.
func (s *Store) Environment() string {
	return s.environment
}

// SetPossibleEnvironments sets the recognised environment names. A nil
// slice means unset; an empty non-nil slice is a valid, empty set.
func (s *Store) SetPossibleEnvironments(envs []string) *Store {
	s.possibleEnvs = slices.Clone(envs)
	return s
}

// PossibleEnvironments returns the recognised environment names, or nil
// when unset.
func (s *Store) PossibleEnvironments() []string {
	return slices.Clone(s.possibleEnvs)
}

// SetRequiredKeys sets the keys that must be present after a load.
func (s *Store) SetRequiredKeys(keys []string) *Store {
	if keys == nil {
		keys = []string{}
	}
	s.requiredKeys = slices.Clone(keys)
	return s
}

// RequiredKeys returns the keys that must be present after a load.
func (s *Store) RequiredKeys() []string {
	return slices.Clone(s.requiredKeys)
}

// SetDirectory sets the configuration directory. The path must exist and
// be writable; otherwise domain.ErrInvalidDirectory is returned and the
// previous value is kept.
func (s *Store) SetDirectory(dir string) error {
	if err := validateDirectory(dir); err != nil {
		return err
	}
	s.directory = dir
	return nil
}

// Directory returns the configuration directory after checking again that
// it exists and is writable.
func (s *Store) Directory() (string, error) {
	if err := validateDirectory(s.directory); err != nil {
		return "", err
	}
	return s.directory, nil
}

// Unmarshal decodes the merged configuration into target using koanf
// struct tags. Tags address nested maps, not literal key names, so a
// top-level key containing a dot ("db.host") is never decoded into a
// field; nest the value under "db" instead.
func (s *Store) Unmarshal(target any) error {
	k := koanf.New(".")
	if err := k.Load(mapProvider(s.data), nil); err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	return k.Unmarshal("", target)
}

// merge copies every top-level key of data into the store, replacing any
// existing value.
func (s *Store) merge(data map[string]any) {
	for k, v := range data {
		s.data[k] = v
	}
}
