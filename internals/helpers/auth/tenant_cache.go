// file: internals/helpers/auth/tenant_cache.go
package helper

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock is injected so the cache is testable without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}

type tenantEntry struct {
	churchID uuid.UUID
	expires  time.Time
}

// TenantCache maps user id → church id with a TTL and a hard capacity.
// On overflow the whole map is dropped; resolving a tenant is a single
// indexed lookup, so a cold cache is cheap.
type TenantCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]tenantEntry
	ttl     time.Duration
	cap     int
	clock   Clock
}

const tenantCacheTTL = 5 * time.Minute

func NewTenantCache(ttl time.Duration, capacity int, clock Clock) *TenantCache {
	if ttl <= 0 {
		ttl = tenantCacheTTL
	}
	if capacity <= 0 {
		capacity = 1024
	}
	if clock == nil {
		clock = SystemClock
	}
	return &TenantCache{
		entries: make(map[uuid.UUID]tenantEntry),
		ttl:     ttl,
		cap:     capacity,
		clock:   clock,
	}
}

func (tc *TenantCache) Get(userID uuid.UUID) (uuid.UUID, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	e, ok := tc.entries[userID]
	if !ok {
		return uuid.Nil, false
	}
	if tc.clock.Now().After(e.expires) {
		delete(tc.entries, userID)
		return uuid.Nil, false
	}
	return e.churchID, true
}

func (tc *TenantCache) Put(userID, churchID uuid.UUID) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.entries) >= tc.cap {
		tc.entries = make(map[uuid.UUID]tenantEntry)
	}
	tc.entries[userID] = tenantEntry{
		churchID: churchID,
		expires:  tc.clock.Now().Add(tc.ttl),
	}
}

func (tc *TenantCache) Invalidate(userID uuid.UUID) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	delete(tc.entries, userID)
}

func (tc *TenantCache) Len() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.entries)
}
