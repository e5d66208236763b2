package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-nishar/Entertainment-API/utils"
	"github.com/abdul-nishar/Entertainment-API/utils/storage"

	"github.com/gofiber/fiber/v2"
)

// UploadPoster accepts a multipart image upload for a catalog entry and
// returns the object key to store as image_cover.
func UploadPoster(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "file upload error", nil)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "only image files are allowed", nil)
	}

	key := fmt.Sprintf("posters/poster_%d%s", time.Now().UnixNano(), ext)

	uploadedKey, err := storage.UploadFile(c.Context(), fileHeader, key)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to upload to storage", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "file uploaded successfully", fiber.Map{
		"file_path": uploadedKey,
	})
}
