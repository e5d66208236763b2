package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/abdul-nishar/Entertainment-API/config"
	"github.com/abdul-nishar/Entertainment-API/dto"
	"github.com/abdul-nishar/Entertainment-API/middleware"
	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/services"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const forgotPasswordMessage = "if the email exists, a reset link has been sent"

// ResetMailer delivers the plaintext reset token out-of-band.
type ResetMailer interface {
	SendPasswordResetEmail(toEmail, resetLink string) error
}

// AuthHandler owns the request-facing auth flows: signup, login, logout and
// the three password flows. All of them converge on issueSession for token
// minting.
type AuthHandler struct {
	accounts *services.AccountService
	mailer   ResetMailer
}

func NewAuthHandler(db *gorm.DB, mailer ResetMailer) *AuthHandler {
	return &AuthHandler{
		accounts: services.NewAccountService(db),
		mailer:   mailer,
	}
}

// issueSession mints a session token for the user and sends it both as an
// HTTP-only cookie and in the response body. The password hash is never
// serialized.
func (h *AuthHandler) issueSession(c *fiber.Ctx, statusCode int, message string, user *models.User) error {
	token, claims, err := utils.GenerateSessionToken(*user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create session token", nil)
	}

	cfg := config.LoadJWTConfig()
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  claims.ExpiresAt.Time,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, statusCode, message, dto.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      dto.NewUserSummary(*user),
	})
}

// Signup registers a new account and logs it in immediately.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	user, err := h.accounts.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email is already registered", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create account", nil)
	}

	return h.issueSession(c, fiber.StatusCreated, "account created successfully", user)
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same response so account existence never leaks.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "please provide email and password", nil)
	}

	user, err := h.accounts.FindActiveByEmail(req.Email)
	if err != nil || !h.accounts.VerifyPassword(user, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "incorrect email or password", nil)
	}

	return h.issueSession(c, fiber.StatusOK, "logged in successfully", user)
}

// Logout overwrites the session cookie with the logged-out sentinel. Tokens
// are stateless, so there is nothing server-side to destroy; a bearer token
// kept by the client stays valid until it expires.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    middleware.LoggedOutSentinel,
		Expires:  time.Now().Add(10 * time.Second),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.SuccessResponse(c, fiber.StatusOK, "logged out successfully", nil)
}

// ForgotPassword creates a time-boxed reset token and mails the plaintext to
// the account. The response is the same whether or not the email exists. If
// delivery fails the stored token is rolled back so no unconsumable token
// lingers.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	user, err := h.accounts.FindActiveByEmail(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, forgotPasswordMessage, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process request", nil)
	}

	resetToken, err := h.accounts.CreateResetToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create reset token", nil)
	}

	if err := h.mailer.SendPasswordResetEmail(user.Email, buildResetLink(c, resetToken)); err != nil {
		log.Printf("password reset delivery failed for user %d: %v", user.ID, err)
		if clearErr := h.accounts.ClearResetToken(user); clearErr != nil {
			log.Printf("failed to roll back reset token for user %d: %v", user.ID, clearErr)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "there was an error sending the email, please try again later", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, forgotPasswordMessage, nil)
}

// ResetPassword consumes the token from the URL and installs the new
// password. An unknown or expired token yields one generic error; the two
// conditions are never distinguished.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	user, err := h.accounts.ResetPasswordWithToken(c.Params("token"), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "token is invalid or has expired", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to reset password", nil)
	}

	return h.issueSession(c, fiber.StatusOK, "password reset successfully", user)
}

// UpdatePassword changes the password of the authenticated caller. A fresh
// session token is issued so the current session survives the
// password-change invalidation rule.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", errs)
	}

	if !h.accounts.VerifyPassword(user, req.CurrentPassword) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "current password is incorrect", nil)
	}

	if err := h.accounts.SetPassword(user, req.NewPassword); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update password", nil)
	}

	return h.issueSession(c, fiber.StatusOK, "password updated successfully", user)
}

// buildResetLink resolves where the reset token should point. A configured
// frontend deep link wins; otherwise the API's own reset route is used.
func buildResetLink(c *fiber.Ctx, token string) string {
	if base := config.LoadEmailConfig().ResetURLBase; base != "" {
		return base + "/" + token
	}
	return c.BaseURL() + "/api/v1/users/resetPassword/" + token
}
