package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestPrefs(t *testing.T) *PrefsStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("flappy_prefs_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return NewPrefsStore(m)
}

func TestPrefsDefaults(t *testing.T) {
	s := openTestPrefs(t)

	if err := s.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p := s.Prefs(); p.Muted || p.LocalBest != 0 || p.Player != "" {
		t.Errorf("defaults = %+v", p)
	}
}

func TestPrefsSaveLoad(t *testing.T) {
	s := openTestPrefs(t)

	s.SetMuted(true)
	s.SetPlayer("ana")
	s.RecordScore(14)
	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Fresh store over the same manager
	reloaded := NewPrefsStore(s.manager)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Prefs{Muted: true, Player: "ana", LocalBest: 14}
	if got := reloaded.Prefs(); got != want {
		t.Errorf("reloaded prefs = %+v, expected %+v", got, want)
	}
}

func TestPrefsCorruptData(t *testing.T) {
	s := openTestPrefs(t)

	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, []byte("muted: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() failed: %v", err)
	}
	if err := s.Load(); err == nil {
		t.Error("Load() should fail on corrupt data")
	}
	if s.Prefs() != (Prefs{}) {
		t.Error("corrupt data should leave defaults")
	}
}

func TestPrefsNilManager(t *testing.T) {
	s := NewPrefsStore(nil)

	if s.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load() = %v", err)
	}

	if !s.ToggleMuted() {
		t.Error("ToggleMuted() should return the new value")
	}
	if err := s.Save(); err != nil {
		t.Errorf("Save() = %v", err)
	}
	if !s.Prefs().Muted {
		t.Error("in-memory prefs should keep changes")
	}
}

func TestPrefsRecordScore(t *testing.T) {
	s := NewPrefsStore(nil)

	tests := []struct {
		score   int
		newBest bool
		best    int
	}{
		{0, false, 0},
		{5, true, 5},
		{3, false, 5},
		{5, false, 5},
		{9, true, 9},
	}

	for _, tc := range tests {
		if got := s.RecordScore(tc.score); got != tc.newBest {
			t.Errorf("RecordScore(%d) = %v, expected %v", tc.score, got, tc.newBest)
		}
		if s.Prefs().LocalBest != tc.best {
			t.Errorf("LocalBest = %d, expected %d", s.Prefs().LocalBest, tc.best)
		}
	}
}
