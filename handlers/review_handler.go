package handlers

import (
	"errors"

	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/dto"
	"github.com/abdul-nishar/Entertainment-API/middleware"
	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var reviewQueryColumns = []string{"entertainment_id", "user_id", "rating", "created_at"}

// ListReviews serves both /reviews and the nested
// /entertainment/:entertainmentId/reviews route.
func ListReviews(c *fiber.Ctx) error {
	features := utils.NewAPIFeatures(c.Queries(), reviewQueryColumns...)

	scoped := func(db *gorm.DB) *gorm.DB {
		if entertainmentID, err := c.ParamsInt("entertainmentId"); err == nil {
			return db.Where("entertainment_id = ?", entertainmentID)
		}
		return db
	}

	var total int64
	if err := features.Filter(scoped(config.DB.Model(&models.Review{}))).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count reviews", nil)
	}

	var reviews []models.Review
	if err := features.Apply(scoped(config.DB.Model(&models.Review{}))).Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve reviews", nil)
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "reviews retrieved successfully", reviews, features.Meta(total))
}

// CreateReview attaches a review to the authenticated user. One review per
// user per title; the composite unique index backs this up.
func CreateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	// Nested route wins over the body for the target title.
	if entertainmentID, err := c.ParamsInt("entertainmentId"); err == nil {
		req.EntertainmentID = uint(entertainmentID)
	}
	if req.EntertainmentID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "entertainment_id is required", nil)
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	if err := config.DB.First(&models.Entertainment{}, req.EntertainmentID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "no entertainment found with this id", nil)
	}

	review := models.Review{
		EntertainmentID: req.EntertainmentID,
		UserID:          user.ID,
		Review:          req.Review,
		Rating:          req.Rating,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "you have already reviewed this title", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create review", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "review created successfully", review)
}

func GetReviewByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid review id", nil)
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "no review found with this id", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve review", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "review retrieved successfully", review)
}

// UpdateReview lets the author amend their review; admins may edit any.
func UpdateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid review id", nil)
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "no review found with this id", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve review", nil)
	}

	if review.UserID != user.ID && !user.IsAdmin() {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "you can only edit your own reviews", nil)
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	if req.Review != nil {
		review.Review = *req.Review
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if err := config.DB.Save(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update review", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "review updated successfully", review)
}

func DeleteReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid review id", nil)
	}

	var review models.Review
	if err := config.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "no review found with this id", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve review", nil)
	}

	if review.UserID != user.ID && !user.IsAdmin() {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "you can only delete your own reviews", nil)
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete review", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
