package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestServer(t *testing.T, tick time.Duration) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.TickInterval = tick
	cfg.NewGame = func(int64) (core.Game, error) { return &scriptedGame{runLength: 3}, nil }

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("scores database should be open")
	}
	return srv
}

func TestNewSSHServerRequiresFactory(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("a server without a game factory should be rejected")
	}
}

func TestNewSSHServerDefaultsTick(t *testing.T) {
	srv := newTestServer(t, 0)
	defer srv.Shutdown()

	if srv.config.TickInterval != core.DefaultTickInterval {
		t.Errorf("TickInterval = %s, expected %s", srv.config.TickInterval, core.DefaultTickInterval)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	srv := newTestServer(t, 20*time.Millisecond)

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := srv.store.TopScores("flappy", 1); err == nil {
		t.Error("scores database should be closed after shutdown")
	}
}
