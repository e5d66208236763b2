package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	EntertainmentID uint   `gorm:"not null;uniqueIndex:idx_review_entertainment_user" json:"entertainment_id"`
	UserID          uint   `gorm:"not null;uniqueIndex:idx_review_entertainment_user" json:"user_id"`
	Review          string `gorm:"type:text;not null" json:"review"`
	Rating          int    `gorm:"not null" json:"rating"`

	Entertainment Entertainment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	User          User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
