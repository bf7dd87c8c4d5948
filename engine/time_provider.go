package engine

import "time"

// TimeProvider abstracts the clock so tests can drive the game loop deterministically
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

// DeltaClock turns successive clock reads into elapsed deltas for Game.Advance
type DeltaClock struct {
	provider TimeProvider
	last     time.Time
}

// NewDeltaClock starts measuring from the provider's current time
func NewDeltaClock(provider TimeProvider) *DeltaClock {
	return &DeltaClock{provider: provider, last: provider.Now()}
}

// Tick returns the time elapsed since the previous Tick (never negative)
func (c *DeltaClock) Tick() time.Duration {
	now := c.provider.Now()
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta
}
