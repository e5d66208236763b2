package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func entertainmentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Entertainment{}, &Review{}))
	return db
}

func testEntertainment(name string, mediaType EntertainmentType) Entertainment {
	return Entertainment{
		Name:       name,
		Type:       mediaType,
		Genre:      "Drama",
		Duration:   "120 min",
		Summary:    "A summary.",
		ImageCover: "posters/cover.jpg",
	}
}

func TestEntertainmentNameCanonicalized(t *testing.T) {
	db := entertainmentTestDB(t)

	item := testEntertainment("  the MARTIAN ", TypeMovie)
	require.NoError(t, db.Create(&item).Error)
	assert.Equal(t, "The martian", item.Name)
}

func TestEntertainmentInvalidTypeRejected(t *testing.T) {
	db := entertainmentTestDB(t)

	item := testEntertainment("Alpha", EntertainmentType("podcast"))
	err := db.Create(&item).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entertainment type")
}

func TestEntertainmentTypeIsValid(t *testing.T) {
	for _, mediaType := range []EntertainmentType{TypeMovie, TypeSeries, TypeAnime, TypeBook} {
		assert.True(t, mediaType.IsValid(), "type %q", mediaType)
	}
	assert.False(t, EntertainmentType("").IsValid())
	assert.False(t, EntertainmentType("podcast").IsValid())
}
