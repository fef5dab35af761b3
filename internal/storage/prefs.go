package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PrefsAppName is the data directory name used for desktop preferences.
const PrefsAppName = "tui_flappy"

const (
	prefsObject   = "prefs"
	prefsProperty = "window"
)

// Prefs are per-machine settings of the desktop window.
type Prefs struct {
	Muted     bool   `yaml:"muted"`
	Player    string `yaml:"player,omitempty"`
	LocalBest int    `yaml:"local_best"`
}

// PrefsStore loads and saves Prefs through gdata.
// A nil manager keeps prefs in memory only.
type PrefsStore struct {
	manager *gdata.Manager
	prefs   Prefs
}

// OpenPrefs opens the platform data directory for appName.
// If it cannot be opened the store still works in memory and the
// error is returned alongside it.
func OpenPrefs(appName string) (*PrefsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewPrefsStore(nil), fmt.Errorf("storage: cannot open prefs: %w", err)
	}
	return NewPrefsStore(m), nil
}

// NewPrefsStore wraps an existing manager, which may be nil.
func NewPrefsStore(m *gdata.Manager) *PrefsStore {
	return &PrefsStore{manager: m}
}

// Persistent reports whether Save writes to disk.
func (s *PrefsStore) Persistent() bool {
	return s.manager != nil
}

// Load reads saved prefs. Missing data leaves the defaults in place.
func (s *PrefsStore) Load() error {
	s.prefs = Prefs{}
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("storage: cannot load prefs: %w", err)
	}

	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("storage: cannot decode prefs: %w", err)
	}
	s.prefs = p
	return nil
}

// Save writes the current prefs. It is a no-op without a manager.
func (s *PrefsStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("storage: cannot encode prefs: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("storage: cannot save prefs: %w", err)
	}
	return nil
}

// Prefs returns the current prefs.
func (s *PrefsStore) Prefs() Prefs {
	return s.prefs
}

// SetMuted changes the mute flag. Call Save to persist it.
func (s *PrefsStore) SetMuted(muted bool) {
	s.prefs.Muted = muted
}

// ToggleMuted flips the mute flag and returns the new value.
func (s *PrefsStore) ToggleMuted() bool {
	s.prefs.Muted = !s.prefs.Muted
	return s.prefs.Muted
}

// SetPlayer changes the remembered player name.
func (s *PrefsStore) SetPlayer(name string) {
	s.prefs.Player = name
}

// RecordScore raises LocalBest if score beats it. Returns true on a new best.
func (s *PrefsStore) RecordScore(score int) bool {
	if score <= s.prefs.LocalBest {
		return false
	}
	s.prefs.LocalBest = score
	return true
}
