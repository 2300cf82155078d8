package helper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Igreja Batista Central", "igreja-batista-central"},
		{"Comunhão & Adoração!", "comunhao-adoracao"},
		{"  --  ", "item"},
		{"", "item"},
		{"UPPER case", "upper-case"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, 100), "input %q", tc.in)
	}

	long := Slugify("abcdefghij klmnopqrst", 10)
	assert.LessOrEqual(t, len(long), 10)
}

func TestEnsureUniqueSlugCI(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	type churchRow struct {
		ID   int    `gorm:"primaryKey;autoIncrement"`
		Slug string `gorm:"column:church_slug"`
	}
	require.NoError(t, db.Table("churches").AutoMigrate(&churchRow{}))

	ctx := context.Background()

	slug, err := EnsureUniqueSlugCI(ctx, db, "churches", "church_slug", "central", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "central", slug)

	require.NoError(t, db.Table("churches").Create(&churchRow{Slug: "Central"}).Error)

	// taken case-insensitively: the -2 suffix kicks in
	slug, err = EnsureUniqueSlugCI(ctx, db, "churches", "church_slug", "central", nil, 100)
	require.NoError(t, err)
	assert.Equal(t, "central-2", slug)
}
