package state

import (
	"errors"
	"testing"
	"time"

	"github.com/skyward/almanac/internal/body"
)

func TestNewManager(t *testing.T) {
	if got := NewManager(0).RefreshInterval(); got != DefaultRefreshInterval {
		t.Errorf("RefreshInterval() = %v, want default %v", got, DefaultRefreshInterval)
	}
	if got := NewManager(-time.Second).RefreshInterval(); got != DefaultRefreshInterval {
		t.Errorf("RefreshInterval() = %v, want default for negative input", got)
	}
	if got := NewManager(30 * time.Second).RefreshInterval(); got != 30*time.Second {
		t.Errorf("RefreshInterval() = %v, want 30s", got)
	}
}

func TestManager_UpdateAndSnapshot(t *testing.T) {
	m := NewManager(time.Second)

	initial := m.Snapshot()
	if initial.Observations != nil || !initial.At.IsZero() {
		t.Errorf("fresh snapshot = %+v, want empty", initial)
	}

	at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	obs := []body.Observation{{}, {}}
	m.Update(obs, at, nil)

	snap := m.Snapshot()
	if len(snap.Observations) != 2 {
		t.Errorf("Observations = %d entries, want 2", len(snap.Observations))
	}
	if !snap.At.Equal(at) {
		t.Errorf("At = %v, want %v", snap.At, at)
	}
	if snap.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set by Update")
	}
	if snap.Err != nil {
		t.Errorf("Err = %v, want nil", snap.Err)
	}
}

func TestManager_UpdateError(t *testing.T) {
	m := NewManager(time.Second)

	at := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	m.Update([]body.Observation{{}}, at, nil)

	// A failed round keeps the previous data but records the error.
	failErr := errors.New("ephemeris offline")
	m.Update(nil, time.Now(), failErr)

	snap := m.Snapshot()
	if len(snap.Observations) != 1 {
		t.Errorf("Observations lost on error: %d entries, want 1", len(snap.Observations))
	}
	if !snap.At.Equal(at) {
		t.Errorf("At changed on error: %v, want %v", snap.At, at)
	}
	if !errors.Is(snap.Err, failErr) {
		t.Errorf("Err = %v, want %v", snap.Err, failErr)
	}

	// A later success clears it.
	m.Update([]body.Observation{{}, {}}, time.Now(), nil)
	if snap := m.Snapshot(); snap.Err != nil {
		t.Errorf("Err = %v after recovery, want nil", snap.Err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(time.Second)
	done := make(chan struct{})

	go func() {
		for i := 0; i < 100; i++ {
			m.Update([]body.Observation{{}}, time.Now(), nil)
		}
		close(done)
	}()

	for i := 0; i < 100; i++ {
		_ = m.Snapshot()
	}
	<-done
}
