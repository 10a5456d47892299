package config

import "sync"

// Store holds the live settings shared between the settings UI and the
// simulation. Readers always get a sanitized copy.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore creates a store seeded with s.
// Returns an error if s carries an unsupported difficulty or scheme.
func NewStore(s Settings) (*Store, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Store{settings: s.Sanitize()}, nil
}

// Settings returns a snapshot of the current settings.
func (st *Store) Settings() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.settings
}

// Update applies fn to a copy of the settings and publishes it if it validates.
// On error the previous settings stay in effect.
func (st *Store) Update(fn func(*Settings)) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	next := st.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	st.settings = next.Sanitize()
	return nil
}
