package handlers

import (
	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/dto"
	"github.com/abdul-nishar/Entertainment-API/middleware"
	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMyWatchlist lists the caller's saved titles, newest first.
func GetMyWatchlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	features := utils.NewAPIFeatures(c.Queries(), "entertainment_id", "created_at")

	var total int64
	if err := features.Filter(config.DB.Model(&models.WatchlistItem{}).Where("user_id = ?", user.ID)).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count watchlist", nil)
	}

	var items []models.WatchlistItem
	err := features.Apply(
		config.DB.Model(&models.WatchlistItem{}).Where("user_id = ?", user.ID).Preload("Entertainment"),
	).Find(&items).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve watchlist", nil)
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "watchlist retrieved successfully", items, features.Meta(total))
}

// AddToWatchlist saves a title for the caller. Duplicates are rejected by
// the composite index.
func AddToWatchlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req dto.AddWatchlistRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	if err := config.DB.First(&models.Entertainment{}, req.EntertainmentID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "no entertainment found with this id", nil)
	}

	item := models.WatchlistItem{
		EntertainmentID: req.EntertainmentID,
		UserID:          user.ID,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is already in your watchlist", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to add to watchlist", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "added to watchlist", item)
}

// RemoveFromWatchlist deletes one of the caller's saved titles.
func RemoveFromWatchlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid watchlist id", nil)
	}

	result := config.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.WatchlistItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to remove from watchlist", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "no watchlist entry found with this id", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
