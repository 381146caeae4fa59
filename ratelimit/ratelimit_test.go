package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced time source.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Unix(1_700_000_000, 0)}
}

func (c *testClock) now() time.Time {
	return c.current
}

func (c *testClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestCheckAllowsUpToLimit(t *testing.T) {
	assert := require.New(t)
	clock := newTestClock()
	limiter := NewWithClock(clock.now)
	cfg := Config{Limit: 2, Window: time.Minute}

	first := limiter.Check("client", cfg)
	assert.True(first.Allowed)
	assert.Equal(1, first.Remaining)

	second := limiter.Check("client", cfg)
	assert.True(second.Allowed)
	assert.Equal(0, second.Remaining)

	third := limiter.Check("client", cfg)
	assert.False(third.Allowed)
	assert.Equal(0, third.Remaining)
	assert.Positive(third.RetryAfter)
}

func TestCheckRemainingCountsDown(t *testing.T) {
	assert := require.New(t)
	limiter := NewWithClock(newTestClock().now)
	cfg := Config{Limit: 5, Window: time.Minute}

	var result Result
	for i := 0; i < 3; i++ {
		result = limiter.Check("client", cfg)
	}

	assert.True(result.Allowed)
	assert.Equal(2, result.Remaining)
}

func TestCheckWindowReset(t *testing.T) {
	assert := require.New(t)
	clock := newTestClock()
	limiter := NewWithClock(clock.now)
	cfg := Config{Limit: 2, Window: time.Minute}

	limiter.Check("client", cfg)
	limiter.Check("client", cfg)
	assert.False(limiter.Check("client", cfg).Allowed)

	clock.advance(61 * time.Second)

	result := limiter.Check("client", cfg)
	assert.True(result.Allowed)
	assert.Equal(cfg.Limit-1, result.Remaining, "fresh window must restart the count at 1")
}

func TestCheckRejectionDoesNotMutate(t *testing.T) {
	assert := require.New(t)
	clock := newTestClock()
	limiter := NewWithClock(clock.now)
	cfg := Config{Limit: 1, Window: time.Minute}

	allowed := limiter.Check("client", cfg)
	assert.True(allowed.Allowed)

	denied := limiter.Check("client", cfg)
	assert.False(denied.Allowed)
	assert.Equal(allowed.Reset, denied.Reset, "rejections must not move the window")

	again := limiter.Check("client", cfg)
	assert.Equal(denied.Reset, again.Reset)
}

func TestCheckResetAndRetryAfterArithmetic(t *testing.T) {
	assert := require.New(t)
	clock := newTestClock()
	limiter := NewWithClock(clock.now)
	cfg := Config{Limit: 1, Window: time.Minute}

	start := clock.now()
	result := limiter.Check("client", cfg)
	assert.Equal(start.Add(time.Minute).Unix(), result.Reset)

	clock.advance(30 * time.Second)
	denied := limiter.Check("client", cfg)
	assert.False(denied.Allowed)
	assert.Equal(int64(30), denied.RetryAfter)

	// Partial seconds round up.
	clock.advance(500 * time.Millisecond)
	denied = limiter.Check("client", cfg)
	assert.Equal(int64(30), denied.RetryAfter)
}

func TestKeysAreIndependent(t *testing.T) {
	assert := require.New(t)
	limiter := NewWithClock(newTestClock().now)
	cfg := Config{Limit: 1, Window: time.Minute}

	assert.True(limiter.Check("a", cfg).Allowed)
	assert.False(limiter.Check("a", cfg).Allowed)
	assert.True(limiter.Check("b", cfg).Allowed)
}

func TestSweepRemovesExpiredEntries(t *testing.T) {
	assert := require.New(t)
	clock := newTestClock()
	limiter := NewWithClock(clock.now)
	cfg := Config{Limit: 5, Window: 30 * time.Second}

	limiter.Check("a", cfg)
	limiter.Check("b", cfg)
	assert.Equal(2, limiter.Size())

	// 45s: both windows expired, but the 60s cleanup interval has not
	// elapsed, so Check must not reap them.
	clock.advance(45 * time.Second)
	limiter.Check("c", cfg)
	assert.Equal(3, limiter.Size(), "sweep is throttled, expired entries linger")

	limiter.Sweep()
	assert.Equal(1, limiter.Size())
}

func TestOpportunisticCleanupAfterInterval(t *testing.T) {
	assert := require.New(t)
	clock := newTestClock()
	limiter := NewWithClock(clock.now)
	cfg := Config{Limit: 5, Window: time.Minute}

	limiter.Check("a", cfg)
	clock.advance(61 * time.Second)

	// The next check crosses the cleanup interval: "a" is expired and
	// reaped, "b" is created.
	limiter.Check("b", cfg)
	assert.Equal(1, limiter.Size())
}

func TestPresets(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Config{Limit: 100, Window: time.Minute}, Standard)
	assert.Equal(Config{Limit: 20, Window: time.Minute}, Strict)
	assert.Equal(Config{Limit: 300, Window: time.Minute}, Generous)

	assert.Equal(Strict, PresetByName("strict"))
	assert.Equal(Generous, PresetByName("generous"))
	assert.Equal(Standard, PresetByName("standard"))
	assert.Equal(Standard, PresetByName("nonsense"))
}
