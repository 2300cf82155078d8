package helper

import (
	"sort"
	"sync"

	"gorm.io/gorm"
)

// Some deployments run the app ahead of their schema migrations. Instead of
// guessing from error text, we ask the live schema which columns exist and
// strip the ones it doesn't have yet, reporting a partial success upstream.

type schemaCaps struct {
	mu    sync.RWMutex
	known map[string]bool // "table.column" → exists
}

var caps = schemaCaps{known: make(map[string]bool)}

// HasColumn checks (and caches) whether table.column exists in the connected
// database. The cache lives for the process: a migration rollout needs a
// restart to be picked up, which matches how deploys happen here.
func HasColumn(db *gorm.DB, table, column string) bool {
	key := table + "." + column
	caps.mu.RLock()
	v, ok := caps.known[key]
	caps.mu.RUnlock()
	if ok {
		return v
	}

	exists := db.Migrator().HasColumn(table, column)
	caps.mu.Lock()
	caps.known[key] = exists
	caps.mu.Unlock()
	return exists
}

// StripUnknownColumns removes entries whose column is missing from the live
// schema. Returns the kept map and the sorted list of dropped columns so the
// caller can surface a degraded-success warning.
func StripUnknownColumns(db *gorm.DB, table string, values map[string]any) (map[string]any, []string) {
	kept := make(map[string]any, len(values))
	var dropped []string
	for col, v := range values {
		if HasColumn(db, table, col) {
			kept[col] = v
		} else {
			dropped = append(dropped, col)
		}
	}
	sort.Strings(dropped)
	return kept, dropped
}

// ResetSchemaCapabilities clears the cache (tests only).
func ResetSchemaCapabilities() {
	caps.mu.Lock()
	caps.known = make(map[string]bool)
	caps.mu.Unlock()
}
