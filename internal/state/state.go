// Package state provides thread-safe snapshot state for the UI and the
// watch loop.
package state

import (
	"sync"
	"time"

	"github.com/skyward/almanac/internal/body"
)

// Snapshot is an immutable view of the latest round of observations.
type Snapshot struct {
	Observations []body.Observation
	At           time.Time // Time the observations were evaluated for
	UpdatedAt    time.Time // Wall-clock time of the update
	Err          error
}

// Manager holds the shared application state behind a lock. Observations
// themselves are immutable, so snapshots hand out the slice as-is.
type Manager struct {
	mu sync.RWMutex

	observations []body.Observation
	at           time.Time
	updatedAt    time.Time
	lastErr      error

	refreshInterval time.Duration
}

// DefaultRefreshInterval between observation rounds in watch/TUI mode.
const DefaultRefreshInterval = 10 * time.Second

// NewManager creates a manager. A non-positive interval gets the default.
func NewManager(refresh time.Duration) *Manager {
	if refresh <= 0 {
		refresh = DefaultRefreshInterval
	}
	return &Manager{refreshInterval: refresh}
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// Update stores a fresh round of observations, or the error that
// prevented one.
func (m *Manager) Update(observations []body.Observation, at time.Time, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updatedAt = time.Now()
	m.lastErr = err
	if err == nil {
		m.observations = observations
		m.at = at
	}
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Observations: m.observations,
		At:           m.at,
		UpdatedAt:    m.updatedAt,
		Err:          m.lastErr,
	}
}
