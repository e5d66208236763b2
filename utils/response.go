package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIResponse defines the common structure returned by the API.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type paginatedResponse struct {
	APIResponse
	Meta PaginationMeta `json:"meta"`
}

// SuccessResponse sends a successful JSON response with the provided status code, message and data.
func SuccessResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	return c.Status(statusCode).JSON(APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error JSON response with the provided status code, message and error details.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, errDetail interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}

	return c.Status(statusCode).JSON(APIResponse{
		Status:  "error",
		Message: message,
		Errors:  errDetail,
	})
}

// PaginatedResponse sends a successful JSON response carrying list data plus pagination metadata.
func PaginatedResponse(c *fiber.Ctx, statusCode int, message string, data interface{}, meta PaginationMeta) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	return c.Status(statusCode).JSON(paginatedResponse{
		APIResponse: APIResponse{
			Status:  "success",
			Message: message,
			Data:    data,
		},
		Meta: meta,
	})
}

// IsDuplicateError reports whether err is a unique constraint violation.
// Matched textually so it works for both the MySQL and sqlite drivers.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
