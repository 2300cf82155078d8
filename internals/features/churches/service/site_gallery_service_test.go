package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churchhub_backend/internals/features/churches/model"
)

func newGalleryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SiteSettingModel{}))
	return db
}

func TestAppendGalleryURLCreatesRowAndAppendsOnce(t *testing.T) {
	db := newGalleryTestDB(t)
	church := uuid.New()

	require.NoError(t, AppendGalleryURL(db, church, "https://cdn.example.com/a.webp"))
	require.NoError(t, AppendGalleryURL(db, church, "https://cdn.example.com/b.webp"))
	// duplicate is skipped
	require.NoError(t, AppendGalleryURL(db, church, "https://cdn.example.com/a.webp"))

	urls, err := GalleryURLs(db, church)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.webp", "https://cdn.example.com/b.webp"}, urls)
}

func TestGalleryIsPerChurch(t *testing.T) {
	db := newGalleryTestDB(t)
	a, b := uuid.New(), uuid.New()

	require.NoError(t, AppendGalleryURL(db, a, "https://cdn.example.com/a.webp"))

	urls, err := GalleryURLs(db, b)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestRemoveGalleryURL(t *testing.T) {
	db := newGalleryTestDB(t)
	church := uuid.New()

	require.NoError(t, AppendGalleryURL(db, church, "https://cdn.example.com/a.webp"))
	require.NoError(t, AppendGalleryURL(db, church, "https://cdn.example.com/b.webp"))

	require.NoError(t, RemoveGalleryURL(db, church, "https://cdn.example.com/a.webp"))
	urls, err := GalleryURLs(db, church)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/b.webp"}, urls)

	// removing something absent is a no-op
	require.NoError(t, RemoveGalleryURL(db, church, "https://cdn.example.com/zzz.webp"))
	require.NoError(t, RemoveGalleryURL(db, uuid.New(), "https://cdn.example.com/b.webp"))
}
