package dto

type CreateReviewRequest struct {
	EntertainmentID uint   `json:"entertainment_id"`
	Review          string `json:"review" validate:"required"`
	Rating          int    `json:"rating" validate:"required,gte=1,lte=5"`
}

func (r *CreateReviewRequest) Validate() map[string]string { return runValidation(r) }

type UpdateReviewRequest struct {
	Review *string `json:"review"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func (r *UpdateReviewRequest) Validate() map[string]string { return runValidation(r) }

type AddWatchlistRequest struct {
	EntertainmentID uint `json:"entertainment_id" validate:"required"`
}

func (r *AddWatchlistRequest) Validate() map[string]string { return runValidation(r) }
