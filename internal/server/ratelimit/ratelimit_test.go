package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(cfg *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.now
	return l, clock
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/templates", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/templates", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.InDelta(t, 6.0, info.RetryAfter.Seconds(), 0.01)
}

func TestLimiter_Refill(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 2, DefaultWindow: 2 * time.Second})
	defer l.Stop()

	assert.True(t, mustAllow(l))
	assert.True(t, mustAllow(l))
	assert.False(t, mustAllow(l))

	clock.advance(time.Second)
	assert.True(t, mustAllow(l))
	assert.False(t, mustAllow(l))
}

func mustAllow(l *Limiter) bool {
	ok, _ := l.Allow("c", "/x", "GET")
	return ok
}

func TestLimiter_WhitelistBlacklist(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		ok, _ := l.Allow("10.0.0.1", "/x", "GET")
		require.True(t, ok)
	}
	ok, _ := l.Allow("10.0.0.2", "/x", "GET")
	assert.False(t, ok)
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(FromConfig(config.RateLimitConfig{Enabled: false}))
	defer l.Stop()
	for i := 0; i < 100; i++ {
		ok, _ := l.Allow("c", "/sessions/x/exports", "POST")
		require.True(t, ok)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer l.Stop()

	// Export burst is 2 and shared across sessions
	ok, info := l.Allow("c", "/sessions/a/exports", "POST")
	assert.True(t, ok)
	assert.Equal(t, 10, info.Limit)
	ok, _ = l.Allow("c", "/sessions/b/exports", "POST")
	assert.True(t, ok)
	ok, _ = l.Allow("c", "/sessions/c/exports", "POST")
	assert.False(t, ok)

	// Other routes use the default limit
	ok, info = l.Allow("c", "/sessions/a", "GET")
	assert.True(t, ok)
	assert.Equal(t, 1000, info.Limit)

	// Health is unlimited
	for i := 0; i < 2000; i++ {
		ok, _ = l.Allow("c", "/health", "GET")
		require.True(t, ok)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	m := MatchEndpoint("/sessions/123/bio", "POST", configs)
	require.NotNil(t, m)
	assert.Equal(t, "/sessions/*/bio", m.Path)

	assert.Nil(t, MatchEndpoint("/sessions/123/bio", "GET", configs))
	assert.Nil(t, MatchEndpoint("/sessions/123/bio/extra", "POST", configs))

	m = MatchEndpoint("/sessions", "POST", configs)
	require.NotNil(t, m)
	assert.Equal(t, 60, m.Limit)

	prefix := []EndpointConfig{{Path: "/exports/", Method: "GET", Limit: 5, Window: time.Minute}}
	assert.NotNil(t, MatchEndpoint("/exports/abc", "GET", prefix))
}

func TestLimiter_Concurrent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c", "/x", "GET"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, allowed)
}

func TestLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow(fmt.Sprintf("client-%d", i), "/x", "GET")
	}
	assert.Equal(t, 5, l.Len())

	clock.advance(30 * time.Minute)
	l.Allow("client-0", "/x", "GET")
	clock.advance(45 * time.Minute)
	l.cleanupBuckets(time.Hour)
	assert.Equal(t, 1, l.Len())
}

func TestFromConfig(t *testing.T) {
	c := FromConfig(config.RateLimitConfig{
		Enabled:       true,
		DefaultLimit:  50,
		DefaultWindow: time.Minute,
		Whitelist:     "10.0.0.1, 10.0.0.2",
	})
	assert.True(t, c.Enabled)
	assert.Equal(t, 50, c.DefaultLimit)
	assert.True(t, c.Whitelist["10.0.0.2"])
	assert.Empty(t, c.Blacklist)
	assert.NotEmpty(t, c.EndpointConfigs)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()
	l.Stop()
	ok, info := l.Allow("c", "/x", "GET")
	assert.True(t, ok)
	assert.Equal(t, 1000, info.Limit)
}
