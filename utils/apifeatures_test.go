package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type catalogRow struct {
	ID        uint
	Name      string
	Genre     string
	Rating    int
	CreatedAt time.Time
}

func featuresTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogRow{}))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []catalogRow{
		{Name: "Alpha", Genre: "Drama", Rating: 9, CreatedAt: base.Add(3 * time.Hour)},
		{Name: "Beta", Genre: "Action", Rating: 7, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Gamma", Genre: "Drama", Rating: 5, CreatedAt: base.Add(time.Hour)},
		{Name: "Delta", Genre: "Comedy", Rating: 8, CreatedAt: base},
	}
	require.NoError(t, db.Create(&rows).Error)
	return db
}

func TestAPIFeaturesFilterEquality(t *testing.T) {
	db := featuresTestDB(t)

	features := NewAPIFeatures(map[string]string{"genre": "Drama"}, "genre", "rating")

	var rows []catalogRow
	require.NoError(t, features.Apply(db.Model(&catalogRow{})).Find(&rows).Error)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Drama", row.Genre)
	}
}

func TestAPIFeaturesFilterOperators(t *testing.T) {
	db := featuresTestDB(t)

	features := NewAPIFeatures(map[string]string{"rating[gte]": "8"}, "genre", "rating")

	var rows []catalogRow
	require.NoError(t, features.Apply(db.Model(&catalogRow{})).Find(&rows).Error)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Rating, 8)
	}
}

func TestAPIFeaturesFilterIgnoresUnknownColumns(t *testing.T) {
	db := featuresTestDB(t)

	features := NewAPIFeatures(map[string]string{
		"password_hash":          "x",
		"name; DROP TABLE users": "x",
	}, "genre", "rating")

	var rows []catalogRow
	require.NoError(t, features.Apply(db.Model(&catalogRow{})).Find(&rows).Error)
	assert.Len(t, rows, 4)
}

func TestAPIFeaturesSort(t *testing.T) {
	db := featuresTestDB(t)

	features := NewAPIFeatures(map[string]string{"sort": "-rating"}, "rating")

	var rows []catalogRow
	require.NoError(t, features.Apply(db.Model(&catalogRow{})).Find(&rows).Error)
	require.Len(t, rows, 4)
	assert.Equal(t, 9, rows[0].Rating)
	assert.Equal(t, 5, rows[3].Rating)
}

func TestAPIFeaturesDefaultSortNewestFirst(t *testing.T) {
	db := featuresTestDB(t)

	features := NewAPIFeatures(map[string]string{}, "rating")

	var rows []catalogRow
	require.NoError(t, features.Apply(db.Model(&catalogRow{})).Find(&rows).Error)
	require.Len(t, rows, 4)
	assert.Equal(t, "Alpha", rows[0].Name)
	assert.Equal(t, "Delta", rows[3].Name)
}

func TestAPIFeaturesPaginate(t *testing.T) {
	db := featuresTestDB(t)

	features := NewAPIFeatures(map[string]string{"page": "2", "limit": "3", "sort": "rating"}, "rating")

	var rows []catalogRow
	require.NoError(t, features.Apply(db.Model(&catalogRow{})).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 9, rows[0].Rating)

	meta := features.Meta(4)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Limit)
	assert.Equal(t, int64(4), meta.Total)
}

func TestAPIFeaturesPaginationDefaults(t *testing.T) {
	features := NewAPIFeatures(map[string]string{"page": "0", "limit": "100000"})
	meta := features.Meta(0)
	assert.Equal(t, DefaultPage, meta.Page)
	assert.Equal(t, DefaultLimit, meta.Limit)
}
