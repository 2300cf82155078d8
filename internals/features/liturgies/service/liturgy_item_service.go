// file: internals/features/liturgies/service/liturgy_item_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/liturgies/model"
)

var (
	ErrLiturgyNotFound     = errors.New("liturgy not found")
	ErrLiturgyItemNotFound = errors.New("liturgy item not found")
	ErrAlreadyAtEdge       = errors.New("item already at that edge")
)

// findLiturgy confirms the liturgy belongs to the tenant.
func findLiturgy(tx *gorm.DB, churchID, liturgyID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&model.LiturgyModel{}).
		Where("liturgy_id = ? AND liturgy_church_id = ?", liturgyID, churchID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return ErrLiturgyNotFound
	}
	return nil
}

// AppendItem adds an item at the end of the program (position = count + 1).
func AppendItem(db *gorm.DB, churchID, liturgyID uuid.UUID, item *model.LiturgyItemModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := findLiturgy(tx, churchID, liturgyID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&model.LiturgyItemModel{}).
			Where("liturgy_item_liturgy_id = ?", liturgyID).
			Count(&count).Error; err != nil {
			return err
		}
		item.LiturgyItemLiturgyID = liturgyID
		item.LiturgyItemPosition = int(count) + 1
		return tx.Create(item).Error
	})
}

// RemoveItem deletes an item and renumbers the trailing items so positions
// stay contiguous from 1.
func RemoveItem(db *gorm.DB, churchID, liturgyID, itemID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := findLiturgy(tx, churchID, liturgyID); err != nil {
			return err
		}
		var item model.LiturgyItemModel
		if err := tx.
			Where("liturgy_item_id = ? AND liturgy_item_liturgy_id = ?", itemID, liturgyID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLiturgyItemNotFound
			}
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return tx.Model(&model.LiturgyItemModel{}).
			Where("liturgy_item_liturgy_id = ? AND liturgy_item_position > ?", liturgyID, item.LiturgyItemPosition).
			UpdateColumn("liturgy_item_position", gorm.Expr("liturgy_item_position - 1")).Error
	})
}

// MoveItem swaps the item with its neighbor above (direction < 0) or below
// (direction > 0). Both rows are written in the same transaction. Moving past
// the first or last position reports ErrAlreadyAtEdge.
func MoveItem(db *gorm.DB, churchID, liturgyID, itemID uuid.UUID, direction int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := findLiturgy(tx, churchID, liturgyID); err != nil {
			return err
		}
		var item model.LiturgyItemModel
		if err := tx.
			Where("liturgy_item_id = ? AND liturgy_item_liturgy_id = ?", itemID, liturgyID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLiturgyItemNotFound
			}
			return err
		}

		targetPos := item.LiturgyItemPosition + direction
		var neighbor model.LiturgyItemModel
		if err := tx.
			Where("liturgy_item_liturgy_id = ? AND liturgy_item_position = ?", liturgyID, targetPos).
			First(&neighbor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAlreadyAtEdge
			}
			return err
		}

		if err := tx.Model(&model.LiturgyItemModel{}).
			Where("liturgy_item_id = ?", neighbor.LiturgyItemID).
			UpdateColumn("liturgy_item_position", item.LiturgyItemPosition).Error; err != nil {
			return err
		}
		return tx.Model(&model.LiturgyItemModel{}).
			Where("liturgy_item_id = ?", item.LiturgyItemID).
			UpdateColumn("liturgy_item_position", targetPos).Error
	})
}

// ListItems returns the program in position order.
func ListItems(db *gorm.DB, churchID, liturgyID uuid.UUID) ([]model.LiturgyItemModel, error) {
	if err := findLiturgy(db, churchID, liturgyID); err != nil {
		return nil, err
	}
	var items []model.LiturgyItemModel
	err := db.
		Where("liturgy_item_liturgy_id = ?", liturgyID).
		Order("liturgy_item_position ASC").
		Find(&items).Error
	return items, err
}
