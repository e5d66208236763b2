package middleware

import (
	"errors"
	"strings"

	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/services"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	ContextClaimsKey = "jwtClaims"
	ContextUserKey   = "currentUser"

	// SessionCookieName carries the session token for browser clients.
	SessionCookieName = "jwt"
	// LoggedOutSentinel is the cookie value written on logout; it is never
	// accepted as a token.
	LoggedOutSentinel = "loggedout"
)

// Protect resolves and validates the caller's identity before any protected
// handler runs. The token is taken from the Authorization header, falling
// back to the session cookie. A valid signature alone is not enough: the
// account must still exist, be active, and must not have changed its
// password after the token was issued.
func Protect(db *gorm.DB) fiber.Handler {
	accounts := services.NewAccountService(db)

	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "you are not logged in, please log in to get access", nil)
		}

		claims, err := utils.VerifySessionToken(token)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "your session has expired, please log in again", nil)
			default:
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid token, please log in again", nil)
			}
		}

		user, err := accounts.FindActiveByID(claims.UserID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "the account belonging to this token no longer exists", nil)
		}

		if claims.IssuedAt != nil && user.PasswordChangedAfter(claims.IssuedAt.Time) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "password was recently changed, please log in again", nil)
		}

		c.Locals(ContextClaimsKey, claims)
		c.Locals(ContextUserKey, user)

		return c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header, else
// from the session cookie, skipping the logged-out sentinel.
func extractToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie := c.Cookies(SessionCookieName); cookie != "" && cookie != LoggedOutSentinel {
		return cookie
	}
	return ""
}

// CurrentUser returns the account resolved by Protect for this request.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(ContextUserKey).(*models.User)
	return user, ok
}

// SessionClaims returns the verified token claims for this request.
func SessionClaims(c *fiber.Ctx) (*utils.SessionClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.SessionClaims)
	return claims, ok
}
