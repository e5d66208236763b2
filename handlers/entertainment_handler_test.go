package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCatalogTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Entertainment{}, &models.Review{}))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })

	app := fiber.New()
	app.Patch("/entertainment/:id", UpdateEntertainment)
	app.Delete("/entertainment/:id", DeleteEntertainment)
	return app
}

// captureDeletedObjects swaps the storage deleter for a recorder.
func captureDeletedObjects(t *testing.T) *[]string {
	t.Helper()
	var keys []string
	orig := deleteStoredObject
	deleteStoredObject = func(ctx context.Context, key string) error {
		keys = append(keys, key)
		return nil
	}
	t.Cleanup(func() { deleteStoredObject = orig })
	return &keys
}

func seedCatalogEntry(t *testing.T, cover string, images []string) models.Entertainment {
	t.Helper()
	item := models.Entertainment{
		Name:       "Alpha",
		Type:       models.TypeMovie,
		Genre:      "Drama",
		Duration:   "120 min",
		Summary:    "A summary.",
		ImageCover: cover,
		Images:     images,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

func TestDeleteEntertainmentRemovesPosterObjects(t *testing.T) {
	app := newCatalogTestApp(t)
	deleted := captureDeletedObjects(t)
	item := seedCatalogEntry(t, "posters/cover.jpg", []string{"posters/extra.jpg"})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/entertainment/%d", item.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.ElementsMatch(t, []string{"posters/cover.jpg", "posters/extra.jpg"}, *deleted)

	err = config.DB.First(&models.Entertainment{}, item.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteEntertainmentNotFound(t *testing.T) {
	app := newCatalogTestApp(t)
	deleted := captureDeletedObjects(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/entertainment/9999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, *deleted)
}

func TestUpdateEntertainmentDeletesReplacedPoster(t *testing.T) {
	app := newCatalogTestApp(t)
	deleted := captureDeletedObjects(t)
	item := seedCatalogEntry(t, "posters/old-cover.jpg", []string{"posters/keep.jpg", "posters/drop.jpg"})

	body, err := json.Marshal(fiber.Map{
		"image_cover": "posters/new-cover.jpg",
		"images":      []string{"posters/keep.jpg"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/entertainment/%d", item.ID), strings.NewReader(string(body)))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.ElementsMatch(t, []string{"posters/old-cover.jpg", "posters/drop.jpg"}, *deleted)

	var updated models.Entertainment
	require.NoError(t, config.DB.First(&updated, item.ID).Error)
	assert.Equal(t, "posters/new-cover.jpg", updated.ImageCover)
	assert.Equal(t, []string{"posters/keep.jpg"}, updated.Images)
}

func TestUpdateEntertainmentKeepsUnchangedPoster(t *testing.T) {
	app := newCatalogTestApp(t)
	deleted := captureDeletedObjects(t)
	item := seedCatalogEntry(t, "posters/cover.jpg", nil)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/entertainment/%d", item.ID),
		strings.NewReader(`{"genre":"Action"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, *deleted)
}
