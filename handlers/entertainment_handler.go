package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/dto"
	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/utils"
	"github.com/abdul-nishar/Entertainment-API/utils/events"
	"github.com/abdul-nishar/Entertainment-API/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Columns the query-string translator may touch for this resource.
var entertainmentQueryColumns = []string{
	"name", "type", "year_of_release", "rated", "director", "writer",
	"imdb_rating", "total_seasons", "genre", "duration", "created_at",
}

// deleteStoredObject is swappable so tests can observe cleanup without S3.
var deleteStoredObject = storage.DeleteFile

// removePosterObjects best-effort deletes the stored poster objects for a
// removed or replaced catalog entry. Empty keys and values that are already
// URLs are skipped; failures are logged, never surfaced to the client.
func removePosterObjects(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" || strings.Contains(key, "://") {
			continue
		}
		if err := deleteStoredObject(ctx, key); err != nil {
			log.Printf("failed to delete stored object %s: %v", key, err)
		}
	}
}

// AddPosterURLToEntertainment swaps the stored object key for a short-lived
// presigned URL so clients can fetch the cover directly.
func AddPosterURLToEntertainment(e *models.Entertainment) {
	if e.ImageCover != "" {
		if url, err := storage.GetPresignedURL(e.ImageCover); err == nil {
			e.ImageCover = url
		}
	}
	for i, key := range e.Images {
		if url, err := storage.GetPresignedURL(key); err == nil {
			e.Images[i] = url
		}
	}
}

func AddPosterURLsToEntertainments(items []models.Entertainment) {
	for i := range items {
		AddPosterURLToEntertainment(&items[i])
	}
}

func ListEntertainment(c *fiber.Ctx) error {
	features := utils.NewAPIFeatures(c.Queries(), entertainmentQueryColumns...)

	var total int64
	if err := features.Filter(config.DB.Model(&models.Entertainment{})).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count entertainment", nil)
	}

	var items []models.Entertainment
	if err := features.Apply(config.DB.Model(&models.Entertainment{})).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve entertainment", nil)
	}

	AddPosterURLsToEntertainments(items)

	return utils.PaginatedResponse(c, fiber.StatusOK, "entertainment retrieved successfully", items, features.Meta(total))
}

func GetEntertainmentByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid entertainment id", nil)
	}

	var item models.Entertainment
	if err := config.DB.Preload("Reviews").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "no entertainment found with this id", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve entertainment", nil)
	}

	AddPosterURLToEntertainment(&item)

	return utils.SuccessResponse(c, fiber.StatusOK, "entertainment retrieved successfully", item)
}

func CreateEntertainment(c *fiber.Ctx) error {
	var req dto.CreateEntertainmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	item := req.ToModel()
	if err := config.DB.Create(&item).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "entertainment with this name already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create entertainment", nil)
	}

	events.Publish(events.CatalogEvent{
		Type:          events.EntertainmentCreated,
		Entertainment: item,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, "entertainment created successfully", item)
}

func UpdateEntertainment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid entertainment id", nil)
	}

	var item models.Entertainment
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "no entertainment found with this id", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve entertainment", nil)
	}

	var req dto.UpdateEntertainmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	oldCover := item.ImageCover
	oldImages := item.Images
	req.ApplyTo(&item)

	if err := config.DB.Save(&item).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "entertainment with this name already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update entertainment", nil)
	}

	// Clean up objects the update replaced.
	var stale []string
	if req.ImageCover != nil && oldCover != item.ImageCover {
		stale = append(stale, oldCover)
	}
	if req.Images != nil {
		kept := make(map[string]bool, len(item.Images))
		for _, key := range item.Images {
			kept[key] = true
		}
		for _, key := range oldImages {
			if !kept[key] {
				stale = append(stale, key)
			}
		}
	}
	removePosterObjects(c.Context(), stale...)

	return utils.SuccessResponse(c, fiber.StatusOK, "entertainment updated successfully", item)
}

func DeleteEntertainment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid entertainment id", nil)
	}

	var item models.Entertainment
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "no entertainment found with this id", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve entertainment", nil)
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete entertainment", nil)
	}

	removePosterObjects(c.Context(), append([]string{item.ImageCover}, item.Images...)...)

	return c.SendStatus(fiber.StatusNoContent)
}
