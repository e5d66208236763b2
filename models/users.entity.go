package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	gorm.Model
	Name                 string     `gorm:"type:varchar(100);not null" json:"name"`
	Email                string     `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	Role                 Role       `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	PasswordHash         string     `gorm:"type:varchar(255);not null" json:"-"`
	PasswordChangedAt    *time.Time `json:"-"`
	PasswordResetToken   string     `gorm:"type:varchar(255);index" json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	Active               bool       `gorm:"not null;default:true" json:"-"`
	Photo                string     `gorm:"type:varchar(255)" json:"photo,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave normalizes the email so lookups are case-insensitive.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// ActiveUsers scopes a query to accounts that have not been deactivated.
// Every credential lookup composes this scope; deactivated accounts are
// invisible to the rest of the system.
func ActiveUsers(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// PasswordChangedAfter reports whether the password was changed strictly
// later than the given token issue time. A nil PasswordChangedAt means the
// password has not changed since signup.
func (u *User) PasswordChangedAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.After(issuedAt)
}

// HasPendingResetToken reports whether a reset digest and expiry are set.
// The two fields are always written and cleared together.
func (u *User) HasPendingResetToken() bool {
	return u.PasswordResetToken != "" && u.PasswordResetExpires != nil
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
