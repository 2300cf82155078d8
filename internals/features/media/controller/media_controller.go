package controller

import (
	"bytes"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	"churchhub_backend/internals/constants"
	"churchhub_backend/internals/features/media/dto"
	"churchhub_backend/internals/features/media/model"
	"churchhub_backend/internals/features/media/service"
	helper "churchhub_backend/internals/helpers"
	helperAuth "churchhub_backend/internals/helpers/auth"
	helperOSS "churchhub_backend/internals/helpers/oss"
)

type MediaController struct {
	DB *gorm.DB
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{DB: db}
}

func shareBaseURL() string {
	return strings.TrimRight(configs.GetEnv("PUBLIC_BASE_URL", ""), "/")
}

// uploadGalleryThumb stores the square grid thumbnail next to the full
// image. Failures only cost the thumbnail: the gallery falls back to the
// full-size URL.
func uploadGalleryThumb(c *fiber.Ctx, svc *helperOSS.OSSService, fh *multipart.FileHeader, mainKey string) string {
	src, err := fh.Open()
	if err != nil {
		log.Printf("[WARN] thumb open: %v", err)
		return ""
	}
	defer src.Close()

	thumb, err := helperOSS.GalleryThumbWebP(src, fh.Filename)
	if err != nil {
		log.Printf("[WARN] thumb encode: %v", err)
		return ""
	}

	thumbKey := strings.TrimSuffix(mainKey, ".webp") + "_thumb.webp"
	if err := svc.UploadStream(c.Context(), thumbKey, bytes.NewReader(thumb), "image/webp"); err != nil {
		log.Printf("[WARN] thumb upload: %v", err)
		return ""
	}
	return svc.PublicURL(thumbKey)
}

// 🟢 GET /api/a/media?category=&public=&q=&page=&per_page=
func (ctrl *MediaController) GetMediaItems(c *fiber.Ctx) error {
	churchID := helperAuth.ResolveChurchID(c, ctrl.DB)
	if churchID == uuid.Nil {
		return helper.JsonList(c, "Media", []dto.MediaItemResponse{}, nil)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MediaItemModel{}).Where("media_item_church_id = ?", churchID)
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("media_item_category = ?", category)
	}
	if pub := strings.TrimSpace(c.Query("public")); pub == "true" {
		q = q.Where("media_item_is_public = ?", true)
	} else if pub == "false" {
		q = q.Where("media_item_is_public = ?", false)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(media_item_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count media: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count media")
	}

	var items []model.MediaItemModel
	if err := q.Order("media_item_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		log.Printf("[ERROR] list media: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch media")
	}

	base := shareBaseURL()
	resp := make([]dto.MediaItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToMediaItemResponse(&items[i], base)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Media", resp, &pg)
}

// 🟢 POST /api/a/media  (multipart: file + metadata fields)
// Images are re-encoded to WebP; everything else is stored as-is. Public
// images land in the tenant's site gallery.
func (ctrl *MediaController) UploadMedia(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MediaUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file")
	}
	if fh.Size > helperOSS.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File too large (max 25MB)")
	}

	svc, err := helperOSS.NewOSSServiceFromEnv("")
	if err != nil {
		status, msg := helperOSS.MapStorageError(err)
		return helper.JsonError(c, status, msg)
	}

	keyPrefix := service.TenantKeyPrefix(churchID)
	var (
		key         string
		contentType string
		thumbURL    string
	)
	if req.MediaItemCategory == constants.MediaCategoryImages {
		key, err = svc.UploadAsWebP(c.Context(), fh, keyPrefix)
		contentType = "image/webp"
		if err == nil {
			thumbURL = uploadGalleryThumb(c, svc, fh, key)
		}
	} else {
		key, contentType, err = svc.UploadRaw(c.Context(), fh, keyPrefix)
	}
	if err != nil {
		status, msg := helperOSS.MapStorageError(err)
		log.Printf("[ERROR] media upload: %v", err)
		return helper.JsonError(c, status, msg)
	}

	item := &model.MediaItemModel{
		MediaItemChurchID:    churchID,
		MediaItemTitle:       req.MediaItemTitle,
		MediaItemCategory:    req.MediaItemCategory,
		MediaItemObjectKey:   key,
		MediaItemPublicURL:   svc.PublicURL(key),
		MediaItemThumbURL:    thumbURL,
		MediaItemContentType: contentType,
		MediaItemSizeBytes:   fh.Size,
		MediaItemIsPublic:    req.MediaItemIsPublic,
		MediaItemShareID:     service.NewShareID(),
	}
	if err := ctrl.DB.Create(item).Error; err != nil {
		log.Printf("[ERROR] save media row: %v", err)
		// roll back the orphaned object
		if delErr := svc.DeleteObject(c.Context(), key); delErr != nil {
			log.Printf("[WARN] orphan cleanup failed for %s: %v", key, delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save media")
	}

	if err := service.PublishToGallery(ctrl.DB, item); err != nil {
		log.Printf("[WARN] gallery publish: %v", err)
		return helper.JsonPartial(c, "Media saved",
			"Upload stored, but the site gallery could not be updated",
			dto.ToMediaItemResponse(item, shareBaseURL()))
	}
	return helper.JsonCreated(c, "Media saved", dto.ToMediaItemResponse(item, shareBaseURL()))
}

// 🟡 PATCH /api/a/media/:id — title and visibility only; the file, category
// and share_id are immutable.
func (ctrl *MediaController) UpdateMedia(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	mediaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid media id")
	}

	var item model.MediaItemModel
	if err := ctrl.DB.
		Where("media_item_id = ? AND media_item_church_id = ?", mediaID, churchID).
		First(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Media not found")
	}

	var req dto.MediaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	values := map[string]any{}
	if req.MediaItemTitle != nil {
		values["media_item_title"] = *req.MediaItemTitle
	}
	if req.MediaItemIsPublic != nil {
		values["media_item_is_public"] = *req.MediaItemIsPublic
	}
	if len(values) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	wasPublic := item.MediaItemIsPublic
	if err := ctrl.DB.Model(&item).Updates(values).Error; err != nil {
		log.Printf("[ERROR] update media: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update media")
	}
	if err := ctrl.DB.Where("media_item_id = ?", mediaID).First(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload media")
	}

	// keep the site gallery in step with visibility changes
	if item.MediaItemIsPublic != wasPublic {
		var galleryErr error
		if item.MediaItemIsPublic {
			galleryErr = service.PublishToGallery(ctrl.DB, &item)
		} else {
			galleryErr = service.UnpublishFromGallery(ctrl.DB, &item)
		}
		if galleryErr != nil {
			log.Printf("[WARN] gallery sync: %v", galleryErr)
		}
	}
	return helper.JsonUpdated(c, "Media updated", dto.ToMediaItemResponse(&item, shareBaseURL()))
}

// 🔴 DELETE /api/a/media/:id — removes the row, the stored object, and the
// gallery entry if there is one.
func (ctrl *MediaController) DeleteMedia(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	mediaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid media id")
	}

	var item model.MediaItemModel
	if err := ctrl.DB.
		Where("media_item_id = ? AND media_item_church_id = ?", mediaID, churchID).
		First(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Media not found")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		log.Printf("[ERROR] delete media: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete media")
	}

	if err := service.UnpublishFromGallery(ctrl.DB, &item); err != nil {
		log.Printf("[WARN] gallery remove: %v", err)
	}

	if svc, err := helperOSS.NewOSSServiceFromEnv(""); err == nil {
		if delErr := svc.DeleteObject(c.Context(), item.MediaItemObjectKey); delErr != nil {
			log.Printf("[WARN] storage delete for %s: %v", item.MediaItemObjectKey, delErr)
		}
		if item.MediaItemThumbURL != "" {
			if delErr := svc.DeleteByPublicURL(c.Context(), item.MediaItemThumbURL); delErr != nil {
				log.Printf("[WARN] thumb delete for %s: %v", item.MediaItemThumbURL, delErr)
			}
		}
	} else {
		log.Printf("[WARN] storage unavailable for delete: %v", err)
	}

	return helper.JsonDeleted(c, "Media deleted", nil)
}
