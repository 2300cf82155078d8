package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cellModel "churchhub_backend/internals/features/cells/model"
	memberModel "churchhub_backend/internals/features/members/model"
)

func newCellTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cellModel.CellModel{}, &memberModel.MemberModel{}))
	return db
}

func seedMember(t *testing.T, db *gorm.DB, churchID uuid.UUID, name, status string, cellID *uuid.UUID) *memberModel.MemberModel {
	t.Helper()
	m := &memberModel.MemberModel{
		MemberChurchID: churchID,
		MemberFullName: name,
		MemberStatus:   status,
		MemberCellID:   cellID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestDeleteCellWithMembersDetachesAllAndRemovesCell(t *testing.T) {
	db := newCellTestDB(t)
	church := uuid.New()

	cell := &cellModel.CellModel{CellChurchID: church, CellName: "North Cell"}
	require.NoError(t, db.Create(cell).Error)

	for i := 0; i < 3; i++ {
		seedMember(t, db, church, "Member", "active", &cell.CellID)
	}
	// member of another cell in the same church must be untouched
	other := &cellModel.CellModel{CellChurchID: church, CellName: "South Cell"}
	require.NoError(t, db.Create(other).Error)
	kept := seedMember(t, db, church, "Keeper", "active", &other.CellID)

	detached, err := DeleteCellWithMembers(db, church, cell.CellID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, detached)

	var withCell int64
	require.NoError(t, db.Model(&memberModel.MemberModel{}).
		Where("member_cell_id = ?", cell.CellID).Count(&withCell).Error)
	assert.Zero(t, withCell, "every linked member should have cell_id nulled")

	var cells int64
	require.NoError(t, db.Model(&cellModel.CellModel{}).
		Where("cell_id = ?", cell.CellID).Count(&cells).Error)
	assert.Zero(t, cells, "the cell row should be gone")

	var keptReloaded memberModel.MemberModel
	require.NoError(t, db.First(&keptReloaded, "member_id = ?", kept.MemberID).Error)
	require.NotNil(t, keptReloaded.MemberCellID)
	assert.Equal(t, other.CellID, *keptReloaded.MemberCellID)
}

func TestDeleteCellWithMembersIsTenantScoped(t *testing.T) {
	db := newCellTestDB(t)
	churchA, churchB := uuid.New(), uuid.New()

	cell := &cellModel.CellModel{CellChurchID: churchA, CellName: "Cell A"}
	require.NoError(t, db.Create(cell).Error)

	_, err := DeleteCellWithMembers(db, churchB, cell.CellID)
	assert.ErrorIs(t, err, ErrCellNotFound)

	var cnt int64
	require.NoError(t, db.Model(&cellModel.CellModel{}).Where("cell_id = ?", cell.CellID).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestValidateLeaderRules(t *testing.T) {
	db := newCellTestDB(t)
	church := uuid.New()

	active := seedMember(t, db, church, "Active", "active", nil)
	inactive := seedMember(t, db, church, "Inactive", "inactive", nil)

	// ok
	assert.NoError(t, ValidateLeader(db, church, active.MemberID, nil))

	// must be active
	assert.ErrorIs(t, ValidateLeader(db, church, inactive.MemberID, nil), ErrLeaderNotActive)

	// unknown member / wrong tenant
	assert.ErrorIs(t, ValidateLeader(db, church, uuid.New(), nil), ErrLeaderNotFound)
	assert.ErrorIs(t, ValidateLeader(db, uuid.New(), active.MemberID, nil), ErrLeaderNotFound)

	// at most one cell per leader
	cell := &cellModel.CellModel{CellChurchID: church, CellName: "Led", CellLeaderID: &active.MemberID}
	require.NoError(t, db.Create(cell).Error)
	assert.ErrorIs(t, ValidateLeader(db, church, active.MemberID, nil), ErrLeaderAlreadyLeading)

	// editing the same cell keeps its own leader valid
	assert.NoError(t, ValidateLeader(db, church, active.MemberID, &cell.CellID))
}

func TestAvailableLeadersExcludesAssignedAndInactive(t *testing.T) {
	db := newCellTestDB(t)
	church := uuid.New()

	free := seedMember(t, db, church, "Free", "active", nil)
	leading := seedMember(t, db, church, "Leading", "active", nil)
	seedMember(t, db, church, "Visitor", "visitor", nil)

	cell := &cellModel.CellModel{CellChurchID: church, CellName: "Led", CellLeaderID: &leading.MemberID}
	require.NoError(t, db.Create(cell).Error)

	got, err := AvailableLeaders(db, church, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, free.MemberID, got[0].MemberID)

	// for the edit form of that same cell, its current leader is offered again
	got, err = AvailableLeaders(db, church, &cell.CellID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
