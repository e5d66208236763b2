package handlers

import (
	"errors"
	"strings"

	"github.com/abdul-nishar/Entertainment-API/dto"
	userdto "github.com/abdul-nishar/Entertainment-API/dto/users"
	"github.com/abdul-nishar/Entertainment-API/middleware"
	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/services"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler serves the authenticated user's own profile routes plus the
// admin-only account CRUD.
type UserHandler struct {
	db       *gorm.DB
	accounts *services.AccountService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		db:       db,
		accounts: services.NewAccountService(db),
	}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "profile retrieved", dto.NewUserSummary(*user))
}

// UpdateMe updates name/email/photo of the caller. Password fields are
// rejected outright; that lives on the updatePassword route.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req userdto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if req.ContainsPasswordFields() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "this route is not for password updates, please use /updatePassword", nil)
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Photo != "" {
		user.Photo = req.Photo
	}

	if err := h.db.Save(user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email is already registered", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update profile", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "profile updated successfully", dto.NewUserSummary(*user))
}

// DeleteMe deactivates the caller's account. The row is kept; active-scoped
// lookups stop seeing it, which also kills every outstanding session on the
// next guarded request.
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	if err := h.accounts.Deactivate(user); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to deactivate account", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ----- ADMIN USER CRUD -----

func (h *UserHandler) AdminCreateUser(c *fiber.Ctx) error {
	var req userdto.AdminUserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Role:         role,
		PasswordHash: passwordHash,
		Photo:        req.Photo,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email is already registered", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create user", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "user created successfully", userdto.NewAdminUserResponse(user))
}

func (h *UserHandler) AdminGetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid user id", nil)
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user retrieved successfully", userdto.NewAdminUserResponse(user))
}

func (h *UserHandler) AdminListUsers(c *fiber.Ctx) error {
	features := utils.NewAPIFeatures(c.Queries(), "name", "email", "role", "created_at")

	var total int64
	if err := features.Filter(h.db.Model(&models.User{})).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count users", nil)
	}

	var users []models.User
	if err := features.Apply(h.db.Model(&models.User{})).Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve users", nil)
	}

	responses := make([]userdto.AdminUserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userdto.NewAdminUserResponse(users[i]))
	}

	return utils.PaginatedResponse(c, fiber.StatusOK, "users retrieved successfully", responses, features.Meta(total))
}

func (h *UserHandler) AdminUpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid user id", nil)
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", nil)
	}

	var req userdto.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Photo != nil {
		user.Photo = *req.Photo
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.db.Save(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email is already registered", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update user", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user updated successfully", userdto.NewAdminUserResponse(user))
}

// AdminDeleteUser deactivates an account. Accounts are never hard-deleted.
func (h *UserHandler) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid user id", nil)
	}

	result := h.db.Model(&models.User{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to deactivate user", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
