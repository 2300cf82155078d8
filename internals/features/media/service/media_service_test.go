package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	churchModel "churchhub_backend/internals/features/churches/model"
	churchService "churchhub_backend/internals/features/churches/service"
	"churchhub_backend/internals/features/media/model"
)

func newMediaTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MediaItemModel{}, &churchModel.SiteSettingModel{}))
	return db
}

func TestNewShareIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewShareID()
		assert.Len(t, id, 12)
		assert.NotContains(t, id, "-")
		assert.False(t, seen[id], "share ids should not repeat")
		seen[id] = true
	}
}

func TestPublishToGalleryOnlyPublicImages(t *testing.T) {
	db := newMediaTestDB(t)
	church := uuid.New()

	publicImage := &model.MediaItemModel{
		MediaItemChurchID:  church,
		MediaItemCategory:  "imagens",
		MediaItemPublicURL: "https://cdn.example.com/a.webp",
		MediaItemIsPublic:  true,
	}
	require.NoError(t, PublishToGallery(db, publicImage))
	// publishing the same item twice must not duplicate the URL
	require.NoError(t, PublishToGallery(db, publicImage))

	privateImage := &model.MediaItemModel{
		MediaItemChurchID:  church,
		MediaItemCategory:  "imagens",
		MediaItemPublicURL: "https://cdn.example.com/b.webp",
		MediaItemIsPublic:  false,
	}
	require.NoError(t, PublishToGallery(db, privateImage))

	publicVideo := &model.MediaItemModel{
		MediaItemChurchID:  church,
		MediaItemCategory:  "videos",
		MediaItemPublicURL: "https://cdn.example.com/c.mp4",
		MediaItemIsPublic:  true,
	}
	require.NoError(t, PublishToGallery(db, publicVideo))

	urls, err := churchService.GalleryURLs(db, church)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.webp"}, urls)
}

func TestGalleryPrefersThumbnail(t *testing.T) {
	db := newMediaTestDB(t)
	church := uuid.New()

	withThumb := &model.MediaItemModel{
		MediaItemChurchID:  church,
		MediaItemCategory:  "imagens",
		MediaItemPublicURL: "https://cdn.example.com/full.webp",
		MediaItemThumbURL:  "https://cdn.example.com/full_thumb.webp",
		MediaItemIsPublic:  true,
	}
	assert.Equal(t, "https://cdn.example.com/full_thumb.webp", GalleryURL(withThumb))
	require.NoError(t, PublishToGallery(db, withThumb))

	urls, err := churchService.GalleryURLs(db, church)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/full_thumb.webp"}, urls)

	// unpublish removes the same URL that was published
	require.NoError(t, UnpublishFromGallery(db, withThumb))
	urls, err = churchService.GalleryURLs(db, church)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestUnpublishFromGallery(t *testing.T) {
	db := newMediaTestDB(t)
	church := uuid.New()

	item := &model.MediaItemModel{
		MediaItemChurchID:  church,
		MediaItemCategory:  "imagens",
		MediaItemPublicURL: "https://cdn.example.com/a.webp",
		MediaItemIsPublic:  true,
	}
	require.NoError(t, PublishToGallery(db, item))
	require.NoError(t, UnpublishFromGallery(db, item))

	urls, err := churchService.GalleryURLs(db, church)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestFindByShareID(t *testing.T) {
	db := newMediaTestDB(t)
	church := uuid.New()

	item := &model.MediaItemModel{
		MediaItemChurchID:  church,
		MediaItemTitle:     "Bulletin",
		MediaItemCategory:  "documentos",
		MediaItemObjectKey: "churches/x/media/bulletin.pdf",
		MediaItemPublicURL: "https://cdn.example.com/bulletin.pdf",
		MediaItemShareID:   NewShareID(),
	}
	require.NoError(t, db.Create(item).Error)

	got, err := FindByShareID(db, item.MediaItemShareID)
	require.NoError(t, err)
	assert.Equal(t, item.MediaItemID, got.MediaItemID)

	_, err = FindByShareID(db, "nope00000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
