// file: internals/features/media/dto/media_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/media/model"
)

// metadata part of the multipart upload form
type MediaUploadRequest struct {
	MediaItemTitle    string `form:"media_item_title" validate:"required,min=2,max=255"`
	MediaItemCategory string `form:"media_item_category" validate:"required,oneof=imagens videos documentos audios"`
	MediaItemIsPublic bool   `form:"media_item_is_public"`
}

type MediaUpdateRequest struct {
	MediaItemTitle    *string `json:"media_item_title" validate:"omitempty,min=2,max=255"`
	MediaItemIsPublic *bool   `json:"media_item_is_public"`
}

type MediaItemResponse struct {
	MediaItemID          uuid.UUID `json:"media_item_id"`
	MediaItemChurchID    uuid.UUID `json:"media_item_church_id"`
	MediaItemTitle       string    `json:"media_item_title"`
	MediaItemCategory    string    `json:"media_item_category"`
	MediaItemPublicURL   string    `json:"media_item_public_url"`
	MediaItemThumbURL    string    `json:"media_item_thumb_url,omitempty"`
	MediaItemContentType string    `json:"media_item_content_type,omitempty"`
	MediaItemIsPublic    bool      `json:"media_item_is_public"`
	MediaItemShareID     string    `json:"media_item_share_id"`
	MediaItemShareURL    string    `json:"media_item_share_url"`
	MediaItemSizeBytes   int64     `json:"media_item_size_bytes"`
	MediaItemCreatedAt   time.Time `json:"media_item_created_at"`
}

// share-link payload: enough for a preview page to render without auth
type MediaShareResponse struct {
	MediaItemTitle     string `json:"media_item_title"`
	MediaItemCategory  string `json:"media_item_category"`
	MediaItemPublicURL string `json:"media_item_public_url"`
}

func ToMediaItemResponse(m *model.MediaItemModel, shareBaseURL string) MediaItemResponse {
	shareURL := ""
	if shareBaseURL != "" {
		shareURL = shareBaseURL + "/midia-share/" + m.MediaItemShareID
	}
	return MediaItemResponse{
		MediaItemID:          m.MediaItemID,
		MediaItemChurchID:    m.MediaItemChurchID,
		MediaItemTitle:       m.MediaItemTitle,
		MediaItemCategory:    m.MediaItemCategory,
		MediaItemPublicURL:   m.MediaItemPublicURL,
		MediaItemThumbURL:    m.MediaItemThumbURL,
		MediaItemContentType: m.MediaItemContentType,
		MediaItemIsPublic:    m.MediaItemIsPublic,
		MediaItemShareID:     m.MediaItemShareID,
		MediaItemShareURL:    shareURL,
		MediaItemSizeBytes:   m.MediaItemSizeBytes,
		MediaItemCreatedAt:   m.MediaItemCreatedAt,
	}
}
