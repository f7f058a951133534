package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually advanced time source for tests
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider creates a mock provider starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Clock turns wall-clock readings into per-tick deltas with pause support
type Clock struct {
	mu       sync.Mutex
	provider TimeProvider
	last     time.Time
	paused   bool
	maxDelta time.Duration
}

// NewClock creates a clock; maxDelta caps a single delta after stalls (0 disables the cap)
func NewClock(provider TimeProvider, maxDelta time.Duration) *Clock {
	return &Clock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns game time elapsed since the previous call
// Zero while paused; never negative
func (c *Clock) Delta() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now

	if c.paused || dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// TogglePause flips the pause state and returns the new state
// Time spent paused is discarded, not delivered on resume
func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	c.last = c.provider.Now()
	return c.paused
}

// IsPaused reports the pause state
func (c *Clock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
