package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider is a controllable clock for tests. Its Wait method
// advances the clock instead of sleeping and can stand in for a WaitFunc.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	waits       []time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Wait records d and advances the clock by it, or fails if ctx is done
func (m *MockTimeProvider) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.waits = append(m.waits, d)
	m.currentTime = m.currentTime.Add(d)
	return nil
}

// Waits returns every duration passed to Wait
func (m *MockTimeProvider) Waits() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.waits...)
}
