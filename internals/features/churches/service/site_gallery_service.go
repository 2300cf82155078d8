package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/churches/model"
)

// AppendGalleryURL adds url to the church's public gallery list, creating
// the site_settings row on first use. Duplicates are skipped so re-uploads
// never double an image on the public site.
func AppendGalleryURL(db *gorm.DB, churchID uuid.UUID, url string) error {
	if churchID == uuid.Nil || url == "" {
		return fmt.Errorf("append gallery: missing church or url")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var ss model.SiteSettingModel
		err := tx.Where("site_setting_church_id = ?", churchID).First(&ss).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ss = model.SiteSettingModel{SiteSettingChurchID: churchID}
		case err != nil:
			return err
		}

		urls, err := decodeGallery(ss.SiteSettingGalleryURLs)
		if err != nil {
			return err
		}
		for _, u := range urls {
			if u == url {
				return nil // already in the gallery
			}
		}
		urls = append(urls, url)

		raw, err := json.Marshal(urls)
		if err != nil {
			return err
		}
		ss.SiteSettingGalleryURLs = datatypes.JSON(raw)

		if ss.SiteSettingID == uuid.Nil {
			return tx.Create(&ss).Error
		}
		return tx.Model(&model.SiteSettingModel{}).
			Where("site_setting_id = ?", ss.SiteSettingID).
			Update("site_setting_gallery_urls", ss.SiteSettingGalleryURLs).Error
	})
}

// RemoveGalleryURL drops url from the gallery list; missing rows or urls
// are a no-op (deleting media must never fail on gallery state).
func RemoveGalleryURL(db *gorm.DB, churchID uuid.UUID, url string) error {
	var ss model.SiteSettingModel
	err := db.Where("site_setting_church_id = ?", churchID).First(&ss).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	urls, err := decodeGallery(ss.SiteSettingGalleryURLs)
	if err != nil {
		return err
	}
	out := urls[:0]
	for _, u := range urls {
		if u != url {
			out = append(out, u)
		}
	}
	if len(out) == len(urls) {
		return nil
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return db.Model(&model.SiteSettingModel{}).
		Where("site_setting_id = ?", ss.SiteSettingID).
		Update("site_setting_gallery_urls", datatypes.JSON(raw)).Error
}

// GalleryURLs returns the decoded list ([] when unset).
func GalleryURLs(db *gorm.DB, churchID uuid.UUID) ([]string, error) {
	var ss model.SiteSettingModel
	err := db.Where("site_setting_church_id = ?", churchID).First(&ss).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeGallery(ss.SiteSettingGalleryURLs)
}

func decodeGallery(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil, fmt.Errorf("corrupt gallery list: %w", err)
	}
	return urls, nil
}
