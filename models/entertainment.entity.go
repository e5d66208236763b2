package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type EntertainmentType string

const (
	TypeMovie  EntertainmentType = "movie"
	TypeSeries EntertainmentType = "series"
	TypeAnime  EntertainmentType = "anime"
	TypeBook   EntertainmentType = "book"
)

type Entertainment struct {
	gorm.Model
	Name          string            `gorm:"type:varchar(191);uniqueIndex;not null" json:"name"`
	Type          EntertainmentType `gorm:"type:varchar(20);not null;index" json:"type"`
	YearOfRelease string            `gorm:"type:varchar(20)" json:"year_of_release,omitempty"`
	Rated         string            `gorm:"type:varchar(20)" json:"rated,omitempty"`
	Director      string            `gorm:"type:varchar(191)" json:"director,omitempty"`
	Writer        string            `gorm:"type:varchar(191)" json:"writer,omitempty"`
	Actors        string            `gorm:"type:text" json:"actors,omitempty"`
	ImdbRating    string            `gorm:"type:varchar(10)" json:"imdb_rating,omitempty"`
	TotalSeasons  string            `gorm:"type:varchar(10)" json:"total_seasons,omitempty"`
	Genre         string            `gorm:"type:varchar(191);not null" json:"genre"`
	Duration      string            `gorm:"type:varchar(50);not null" json:"duration"`
	Summary       string            `gorm:"type:text;not null" json:"summary"`
	ImageCover    string            `gorm:"type:varchar(255);not null" json:"image_cover"`
	Images        []string          `gorm:"serializer:json" json:"images,omitempty"`
	Trailer       string            `gorm:"type:varchar(255)" json:"trailer,omitempty"`

	Reviews []Review `gorm:"foreignKey:EntertainmentID" json:"reviews,omitempty"`
}

func (Entertainment) TableName() string {
	return "entertainments"
}

// BeforeSave rejects unknown media types and canonicalizes the title:
// leading capital, rest lowered.
func (e *Entertainment) BeforeSave(tx *gorm.DB) error {
	if !e.Type.IsValid() {
		return fmt.Errorf("invalid entertainment type %q", e.Type)
	}

	name := strings.TrimSpace(e.Name)
	if name != "" {
		e.Name = strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	}
	return nil
}

func (t EntertainmentType) IsValid() bool {
	switch t {
	case TypeMovie, TypeSeries, TypeAnime, TypeBook:
		return true
	default:
		return false
	}
}
