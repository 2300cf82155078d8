// file: internals/features/media/service/media_service.go
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/constants"
	churchService "churchhub_backend/internals/features/churches/service"
	"churchhub_backend/internals/features/media/model"
)

// NewShareID issues the short link token: the first 12 characters of a
// dash-stripped UUID. Unique per item, never rewritten after upload.
func NewShareID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// TenantKeyPrefix is the storage folder for a tenant's media.
func TenantKeyPrefix(churchID uuid.UUID) string {
	return fmt.Sprintf("churches/%s/media", churchID)
}

// GalleryURL picks what the public grid shows: the square thumbnail when
// one was generated, the full image otherwise.
func GalleryURL(item *model.MediaItemModel) string {
	if item.MediaItemThumbURL != "" {
		return item.MediaItemThumbURL
	}
	return item.MediaItemPublicURL
}

// PublishToGallery mirrors a public image into the tenant's site gallery.
// Only the imagens category lands there, and only once.
func PublishToGallery(db *gorm.DB, item *model.MediaItemModel) error {
	if !item.MediaItemIsPublic || item.MediaItemCategory != constants.MediaCategoryImages {
		return nil
	}
	return churchService.AppendGalleryURL(db, item.MediaItemChurchID, GalleryURL(item))
}

// UnpublishFromGallery removes the URL when the item is deleted or made
// private. Missing URLs are a no-op.
func UnpublishFromGallery(db *gorm.DB, item *model.MediaItemModel) error {
	if item.MediaItemCategory != constants.MediaCategoryImages {
		return nil
	}
	return churchService.RemoveGalleryURL(db, item.MediaItemChurchID, GalleryURL(item))
}

// FindByShareID is the unauthenticated share-link lookup.
func FindByShareID(db *gorm.DB, shareID string) (*model.MediaItemModel, error) {
	var item model.MediaItemModel
	if err := db.
		Where("media_item_share_id = ?", shareID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
