package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSchemaTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestStripUnknownColumns(t *testing.T) {
	db := openSchemaTestDB(t)
	ResetSchemaCapabilities()
	t.Cleanup(ResetSchemaCapabilities)

	require.NoError(t, db.Exec(`CREATE TABLE members (member_id TEXT PRIMARY KEY, member_full_name TEXT)`).Error)

	values := map[string]any{
		"member_full_name": "Ana Souza",
		"member_nickname":  "Aninha", // not migrated yet
	}
	kept, dropped := StripUnknownColumns(db, "members", values)

	assert.Equal(t, map[string]any{"member_full_name": "Ana Souza"}, kept)
	assert.Equal(t, []string{"member_nickname"}, dropped)
}

// Insert through the same strip-then-create sequence the entity
// controllers use, against a table that lags the model by one column.
func TestStripUnknownColumnsInsertAgainstLaggingSchema(t *testing.T) {
	db := openSchemaTestDB(t)
	ResetSchemaCapabilities()
	t.Cleanup(ResetSchemaCapabilities)

	require.NoError(t, db.Exec(`CREATE TABLE events (
		event_id TEXT PRIMARY KEY,
		event_church_id TEXT NOT NULL,
		event_title TEXT NOT NULL
	)`).Error)

	values := map[string]any{
		"event_id":          "11111111-2222-3333-4444-555555555555",
		"event_church_id":   "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"event_title":       "Culto de Celebração",
		"event_is_featured": true, // not migrated yet
	}
	kept, dropped := StripUnknownColumns(db, "events", values)
	assert.Equal(t, []string{"event_is_featured"}, dropped)

	require.NoError(t, db.Table("events").Create(kept).Error)

	var title string
	require.NoError(t, db.Table("events").
		Where("event_id = ?", values["event_id"]).
		Pluck("event_title", &title).Error)
	assert.Equal(t, "Culto de Celebração", title)
}

func TestHasColumnIsCached(t *testing.T) {
	db := openSchemaTestDB(t)
	ResetSchemaCapabilities()
	t.Cleanup(ResetSchemaCapabilities)

	require.NoError(t, db.Exec(`CREATE TABLE cells (cell_id TEXT PRIMARY KEY)`).Error)

	assert.False(t, HasColumn(db, "cells", "cell_name"))

	// the column shows up later; the process-lifetime cache still says no
	require.NoError(t, db.Exec(`ALTER TABLE cells ADD COLUMN cell_name TEXT`).Error)
	assert.False(t, HasColumn(db, "cells", "cell_name"))

	ResetSchemaCapabilities()
	assert.True(t, HasColumn(db, "cells", "cell_name"))
}
