// file: internals/features/cells/service/cell_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cellModel "churchhub_backend/internals/features/cells/model"
	memberModel "churchhub_backend/internals/features/members/model"
)

var (
	ErrLeaderNotFound       = errors.New("leader not found in this church")
	ErrLeaderNotActive      = errors.New("leader must be an active member")
	ErrLeaderAlreadyLeading = errors.New("member already leads another cell")
	ErrCellNotFound         = errors.New("cell not found")
)

// ValidateLeader enforces the leadership rules before a cell is created or
// updated: the member exists in the tenant, is active, and does not lead a
// different cell. excludeCellID skips the cell being edited.
func ValidateLeader(db *gorm.DB, churchID, leaderID uuid.UUID, excludeCellID *uuid.UUID) error {
	var m memberModel.MemberModel
	if err := db.
		Where("member_id = ? AND member_church_id = ?", leaderID, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeaderNotFound
		}
		return err
	}
	if m.MemberStatus != "active" {
		return ErrLeaderNotActive
	}

	q := db.Model(&cellModel.CellModel{}).
		Where("cell_leader_id = ? AND cell_church_id = ?", leaderID, churchID)
	if excludeCellID != nil {
		q = q.Where("cell_id <> ?", *excludeCellID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return ErrLeaderAlreadyLeading
	}
	return nil
}

// AvailableLeaders lists active members not currently leading any cell
// (optionally keeping the current leader of cellID in the list so edit
// forms can show the existing assignment).
func AvailableLeaders(db *gorm.DB, churchID uuid.UUID, cellID *uuid.UUID) ([]memberModel.MemberModel, error) {
	sub := db.Model(&cellModel.CellModel{}).
		Select("cell_leader_id").
		Where("cell_church_id = ? AND cell_leader_id IS NOT NULL", churchID)
	if cellID != nil {
		sub = sub.Where("cell_id <> ?", *cellID)
	}

	var members []memberModel.MemberModel
	err := db.
		Where("member_church_id = ? AND member_status = ?", churchID, "active").
		Where("member_id NOT IN (?)", sub).
		Order("member_full_name ASC").
		Find(&members).Error
	return members, err
}

// DeleteCellWithMembers removes the cell and nulls its members' cell_id in
// ONE transaction, so a crash can't leave members pointing at a dead cell.
// Returns the number of members detached.
func DeleteCellWithMembers(db *gorm.DB, churchID, cellID uuid.UUID) (int64, error) {
	var detached int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var cell cellModel.CellModel
		if err := tx.
			Where("cell_id = ? AND cell_church_id = ?", cellID, churchID).
			First(&cell).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCellNotFound
			}
			return err
		}

		res := tx.Model(&memberModel.MemberModel{}).
			Where("member_cell_id = ? AND member_church_id = ?", cellID, churchID).
			Update("member_cell_id", nil)
		if res.Error != nil {
			return fmt.Errorf("detach members: %w", res.Error)
		}
		detached = res.RowsAffected

		if err := tx.Delete(&cell).Error; err != nil {
			return fmt.Errorf("delete cell: %w", err)
		}
		return nil
	})
	return detached, err
}
