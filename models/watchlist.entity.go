package models

import "gorm.io/gorm"

type WatchlistItem struct {
	gorm.Model
	EntertainmentID uint `gorm:"not null;uniqueIndex:idx_watchlist_user_entertainment" json:"entertainment_id"`
	UserID          uint `gorm:"not null;uniqueIndex:idx_watchlist_user_entertainment" json:"user_id"`

	Entertainment Entertainment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"entertainment,omitempty"`
	User          User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (WatchlistItem) TableName() string {
	return "watchlist_items"
}
