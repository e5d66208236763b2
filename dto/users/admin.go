package users

import (
	"time"

	"github.com/abdul-nishar/Entertainment-API/models"
)

type AdminUserCreateRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Photo    string      `json:"photo"`
}

type AdminUserUpdateRequest struct {
	Name   *string      `json:"name"`
	Email  *string      `json:"email"`
	Role   *models.Role `json:"role"`
	Photo  *string      `json:"photo"`
	Active *bool        `json:"active"`
}

type AdminUserResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Photo     string      `json:"photo,omitempty"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewAdminUserResponse(user models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Photo:     user.Photo,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (r *AdminUserCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "name is required"
	}
	if r.Email == "" {
		errors["email"] = "email is required"
	}
	if r.Password == "" {
		errors["password"] = "password is required"
	} else if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}
	if r.Role != "" && !r.Role.IsValid() {
		errors["role"] = "role must be user or admin"
	}

	return errors
}

func (r *AdminUserUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Role != nil && !r.Role.IsValid() {
		errors["role"] = "role must be user or admin"
	}
	if r.Name != nil && *r.Name == "" {
		errors["name"] = "name cannot be empty"
	}
	if r.Email != nil && *r.Email == "" {
		errors["email"] = "email cannot be empty"
	}

	return errors
}
