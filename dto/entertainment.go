package dto

import "github.com/abdul-nishar/Entertainment-API/models"

type CreateEntertainmentRequest struct {
	Name          string   `json:"name" validate:"required,max=191"`
	Type          string   `json:"type" validate:"required,oneof=movie series anime book"`
	YearOfRelease string   `json:"year_of_release"`
	Rated         string   `json:"rated"`
	Director      string   `json:"director"`
	Writer        string   `json:"writer"`
	Actors        string   `json:"actors"`
	ImdbRating    string   `json:"imdb_rating"`
	TotalSeasons  string   `json:"total_seasons"`
	Genre         string   `json:"genre" validate:"required"`
	Duration      string   `json:"duration" validate:"required"`
	Summary       string   `json:"summary" validate:"required"`
	ImageCover    string   `json:"image_cover" validate:"required"`
	Images        []string `json:"images"`
	Trailer       string   `json:"trailer"`
}

func (r *CreateEntertainmentRequest) Validate() map[string]string { return runValidation(r) }

func (r *CreateEntertainmentRequest) ToModel() models.Entertainment {
	return models.Entertainment{
		Name:          r.Name,
		Type:          models.EntertainmentType(r.Type),
		YearOfRelease: r.YearOfRelease,
		Rated:         r.Rated,
		Director:      r.Director,
		Writer:        r.Writer,
		Actors:        r.Actors,
		ImdbRating:    r.ImdbRating,
		TotalSeasons:  r.TotalSeasons,
		Genre:         r.Genre,
		Duration:      r.Duration,
		Summary:       r.Summary,
		ImageCover:    r.ImageCover,
		Images:        r.Images,
		Trailer:       r.Trailer,
	}
}

type UpdateEntertainmentRequest struct {
	Name          *string   `json:"name"`
	Type          *string   `json:"type" validate:"omitempty,oneof=movie series anime book"`
	YearOfRelease *string   `json:"year_of_release"`
	Rated         *string   `json:"rated"`
	Director      *string   `json:"director"`
	Writer        *string   `json:"writer"`
	Actors        *string   `json:"actors"`
	ImdbRating    *string   `json:"imdb_rating"`
	TotalSeasons  *string   `json:"total_seasons"`
	Genre         *string   `json:"genre"`
	Duration      *string   `json:"duration"`
	Summary       *string   `json:"summary"`
	ImageCover    *string   `json:"image_cover"`
	Images        *[]string `json:"images"`
	Trailer       *string   `json:"trailer"`
}

func (r *UpdateEntertainmentRequest) Validate() map[string]string { return runValidation(r) }

// ApplyTo copies only the provided fields onto the model.
func (r *UpdateEntertainmentRequest) ApplyTo(e *models.Entertainment) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Type != nil {
		e.Type = models.EntertainmentType(*r.Type)
	}
	if r.YearOfRelease != nil {
		e.YearOfRelease = *r.YearOfRelease
	}
	if r.Rated != nil {
		e.Rated = *r.Rated
	}
	if r.Director != nil {
		e.Director = *r.Director
	}
	if r.Writer != nil {
		e.Writer = *r.Writer
	}
	if r.Actors != nil {
		e.Actors = *r.Actors
	}
	if r.ImdbRating != nil {
		e.ImdbRating = *r.ImdbRating
	}
	if r.TotalSeasons != nil {
		e.TotalSeasons = *r.TotalSeasons
	}
	if r.Genre != nil {
		e.Genre = *r.Genre
	}
	if r.Duration != nil {
		e.Duration = *r.Duration
	}
	if r.Summary != nil {
		e.Summary = *r.Summary
	}
	if r.ImageCover != nil {
		e.ImageCover = *r.ImageCover
	}
	if r.Images != nil {
		e.Images = *r.Images
	}
	if r.Trailer != nil {
		e.Trailer = *r.Trailer
	}
}
