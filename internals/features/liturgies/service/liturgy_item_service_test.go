package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churchhub_backend/internals/features/liturgies/model"
)

func newLiturgyTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.LiturgyModel{}, &model.LiturgyItemModel{}))
	return db
}

func seedLiturgy(t *testing.T, db *gorm.DB, churchID uuid.UUID) *model.LiturgyModel {
	t.Helper()
	l := &model.LiturgyModel{
		LiturgyChurchID:    churchID,
		LiturgyTitle:       "Sunday Service",
		LiturgyType:        "service",
		LiturgyScheduledAt: time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func appendItems(t *testing.T, db *gorm.DB, churchID uuid.UUID, liturgyID uuid.UUID, titles ...string) []model.LiturgyItemModel {
	t.Helper()
	out := make([]model.LiturgyItemModel, 0, len(titles))
	for _, title := range titles {
		item := &model.LiturgyItemModel{LiturgyItemTitle: title}
		require.NoError(t, AppendItem(db, churchID, liturgyID, item))
		out = append(out, *item)
	}
	return out
}

func positions(t *testing.T, db *gorm.DB, churchID, liturgyID uuid.UUID) ([]int, []string) {
	t.Helper()
	items, err := ListItems(db, churchID, liturgyID)
	require.NoError(t, err)
	pos := make([]int, len(items))
	titles := make([]string, len(items))
	for i := range items {
		pos[i] = items[i].LiturgyItemPosition
		titles[i] = items[i].LiturgyItemTitle
	}
	return pos, titles
}

func TestAppendItemAssignsNextPosition(t *testing.T) {
	db := newLiturgyTestDB(t)
	church := uuid.New()
	l := seedLiturgy(t, db, church)

	items := appendItems(t, db, church, l.LiturgyID, "Welcome", "Worship", "Sermon")
	assert.Equal(t, 1, items[0].LiturgyItemPosition)
	assert.Equal(t, 2, items[1].LiturgyItemPosition)
	assert.Equal(t, 3, items[2].LiturgyItemPosition)
}

func TestRemoveItemRenumbersContiguously(t *testing.T) {
	db := newLiturgyTestDB(t)
	church := uuid.New()
	l := seedLiturgy(t, db, church)

	items := appendItems(t, db, church, l.LiturgyID, "A", "B", "C", "D")
	require.NoError(t, RemoveItem(db, church, l.LiturgyID, items[1].LiturgyItemID))

	pos, titles := positions(t, db, church, l.LiturgyID)
	assert.Equal(t, []int{1, 2, 3}, pos)
	assert.Equal(t, []string{"A", "C", "D"}, titles)
}

func TestMoveItemSwapsExactlyTwoRows(t *testing.T) {
	db := newLiturgyTestDB(t)
	church := uuid.New()
	l := seedLiturgy(t, db, church)

	appendItems(t, db, church, l.LiturgyID, "A", "B", "C")

	items, err := ListItems(db, church, l.LiturgyID)
	require.NoError(t, err)

	// move first item down: A and B swap, C untouched
	require.NoError(t, MoveItem(db, church, l.LiturgyID, items[0].LiturgyItemID, +1))
	pos, titles := positions(t, db, church, l.LiturgyID)
	assert.Equal(t, []int{1, 2, 3}, pos)
	assert.Equal(t, []string{"B", "A", "C"}, titles)

	// move it back up
	require.NoError(t, MoveItem(db, church, l.LiturgyID, items[0].LiturgyItemID, -1))
	_, titles = positions(t, db, church, l.LiturgyID)
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestMoveItemAtEdge(t *testing.T) {
	db := newLiturgyTestDB(t)
	church := uuid.New()
	l := seedLiturgy(t, db, church)

	items := appendItems(t, db, church, l.LiturgyID, "A", "B")
	assert.ErrorIs(t, MoveItem(db, church, l.LiturgyID, items[0].LiturgyItemID, -1), ErrAlreadyAtEdge)
	assert.ErrorIs(t, MoveItem(db, church, l.LiturgyID, items[1].LiturgyItemID, +1), ErrAlreadyAtEdge)
}

func TestLiturgyItemsAreTenantScoped(t *testing.T) {
	db := newLiturgyTestDB(t)
	church, other := uuid.New(), uuid.New()
	l := seedLiturgy(t, db, church)

	item := &model.LiturgyItemModel{LiturgyItemTitle: "Welcome"}
	assert.ErrorIs(t, AppendItem(db, other, l.LiturgyID, item), ErrLiturgyNotFound)

	_, err := ListItems(db, other, l.LiturgyID)
	assert.ErrorIs(t, err, ErrLiturgyNotFound)
}
