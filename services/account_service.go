package services

import (
	"errors"
	"strings"
	"time"

	"github.com/abdul-nishar/Entertainment-API/models"
	"github.com/abdul-nishar/Entertainment-API/utils"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// AccountService owns credential state: password hashes, the password-change
// timestamp and pending reset tokens. It is the only code path that mutates
// password state.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// FindActiveByID looks up an account by primary key. Deactivated accounts
// are treated as nonexistent.
func (s *AccountService) FindActiveByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Scopes(models.ActiveUsers).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActiveByEmail looks up an account by normalized email.
func (s *AccountService) FindActiveByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Scopes(models.ActiveUsers).
		Where("email = ?", normalizeEmail(email)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account with the default role. The plaintext
// password is hashed before anything touches the database.
func (s *AccountService) Register(name, email, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Role:         models.RoleUser,
		PasswordHash: hash,
		Active:       true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword checks a candidate password against the stored hash.
func (s *AccountService) VerifyPassword(user *models.User, plaintext string) bool {
	return utils.CheckPassword(user.PasswordHash, plaintext)
}

// SetPassword hashes and stores a new password, records the change time and
// clears any pending reset token in a single row update. The change time is
// backdated one second so a session token minted in the same instant still
// counts as issued before the change.
func (s *AccountService) SetPassword(user *models.User, plaintext string) error {
	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return err
	}

	changedAt := time.Now().Add(-time.Second)
	user.PasswordHash = hash
	user.PasswordChangedAt = &changedAt
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil

	return s.db.Model(user).Updates(map[string]interface{}{
		"password_hash":          user.PasswordHash,
		"password_changed_at":    user.PasswordChangedAt,
		"password_reset_token":   "",
		"password_reset_expires": nil,
	}).Error
}

// CreateResetToken stores a fresh reset digest and expiry on the account and
// returns the plaintext exactly once. Digest and expiry are committed
// together.
func (s *AccountService) CreateResetToken(user *models.User) (string, error) {
	plaintext, digest, expiresAt, err := utils.GenerateResetToken()
	if err != nil {
		return "", err
	}

	user.PasswordResetToken = digest
	user.PasswordResetExpires = &expiresAt

	err = s.db.Model(user).Updates(map[string]interface{}{
		"password_reset_token":   digest,
		"password_reset_expires": expiresAt,
	}).Error
	if err != nil {
		return "", err
	}
	return plaintext, nil
}

// ClearResetToken rolls back a pending reset token, e.g. when delivering the
// reset email failed.
func (s *AccountService) ClearResetToken(user *models.User) error {
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil

	return s.db.Model(user).Updates(map[string]interface{}{
		"password_reset_token":   "",
		"password_reset_expires": nil,
	}).Error
}

// ConsumeResetToken finds the account holding an unexpired reset token that
// matches the supplied plaintext. Digest equality and expiry are checked in
// one predicate so a failure never reveals which condition missed.
func (s *AccountService) ConsumeResetToken(plaintext string, now time.Time) (*models.User, error) {
	digest := utils.HashResetToken(plaintext)

	var user models.User
	err := s.db.Scopes(models.ActiveUsers).
		Where("password_reset_token = ? AND password_reset_expires > ?", digest, now).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetPasswordWithToken consumes a reset token and installs the new
// password atomically; the token is unusable afterwards.
func (s *AccountService) ResetPasswordWithToken(plaintext, newPassword string) (*models.User, error) {
	var user *models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		svc := NewAccountService(tx)

		found, err := svc.ConsumeResetToken(plaintext, time.Now())
		if err != nil {
			return err
		}
		if err := svc.SetPassword(found, newPassword); err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate soft-deletes an account. The row stays but every active-scoped
// lookup stops seeing it.
func (s *AccountService) Deactivate(user *models.User) error {
	return s.db.Model(user).Update("active", false).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
