package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestTenantCacheHitWithinTTL(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	tc := NewTenantCache(5*time.Minute, 10, clk)

	user := uuid.New()
	church := uuid.New()
	tc.Put(user, church)

	clk.Advance(4 * time.Minute)
	got, ok := tc.Get(user)
	require.True(t, ok)
	assert.Equal(t, church, got)
}

func TestTenantCacheExpiresAfterTTL(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	tc := NewTenantCache(5*time.Minute, 10, clk)

	user := uuid.New()
	tc.Put(user, uuid.New())

	clk.Advance(5*time.Minute + time.Second)
	_, ok := tc.Get(user)
	assert.False(t, ok)
	assert.Equal(t, 0, tc.Len(), "expired entry should be evicted on read")
}

func TestTenantCacheCapacityReset(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	tc := NewTenantCache(time.Minute, 3, clk)

	for i := 0; i < 3; i++ {
		tc.Put(uuid.New(), uuid.New())
	}
	require.Equal(t, 3, tc.Len())

	// overflow drops the map instead of growing unbounded
	tc.Put(uuid.New(), uuid.New())
	assert.Equal(t, 1, tc.Len())
}

func TestTenantCacheInvalidate(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	tc := NewTenantCache(time.Minute, 10, clk)

	user := uuid.New()
	tc.Put(user, uuid.New())
	tc.Invalidate(user)

	_, ok := tc.Get(user)
	assert.False(t, ok)
}
