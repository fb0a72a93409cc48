package tui

import (
	"sync"
	"testing"
)

func TestSessionGateSingleSession(t *testing.T) {
	var g SessionGate

	if !g.Acquire("a") {
		t.Fatal("first session should be admitted")
	}
	if g.Acquire("b") {
		t.Error("second session should be rejected while the first is active")
	}
	if !g.Acquire("a") {
		t.Error("the active session may re-acquire")
	}

	if id, ok := g.Active(); !ok || id != "a" {
		t.Errorf("Active() = %q, %v, expected a", id, ok)
	}

	// Releasing someone else's claim is a no-op
	g.Release("b")
	if g.Acquire("b") {
		t.Error("gate should still be held by a")
	}

	g.Release("a")
	if _, ok := g.Active(); ok {
		t.Error("gate should be free after release")
	}
	if !g.Acquire("b") {
		t.Error("next session should be admitted after release")
	}
}

func TestSessionGateConcurrent(t *testing.T) {
	var g SessionGate
	var wg sync.WaitGroup
	admitted := make(chan string, 50)

	for i := range 50 {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if g.Acquire(id) {
				admitted <- id
			}
		}(string(rune('A' + i)))
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	if count != 1 {
		t.Errorf("%d sessions admitted concurrently, expected 1", count)
	}
}

func TestNewSSHServerRequiresGame(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig(), nil); err == nil {
		t.Error("expected an error without a game factory")
	}
}

func TestNewSSHServerHostKeyDir(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = dir + "/keys/host_key"
	cfg.NewGame = func() Game { return &fakeGame{} }

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.gate == nil {
		t.Error("server should own a session gate")
	}
}
