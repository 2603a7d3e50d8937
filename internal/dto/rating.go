package dto

import "github.com/poseidon-markets/refdata-service/internal/models"

// RatingDTO is the wire representation of a credit rating.
type RatingDTO struct {
	ID           int64  `json:"id"`
	MoodysRating string `json:"moodys_rating" binding:"required"`
	SandPRating  string `json:"sand_p_rating" binding:"required"`
	FitchRating  string `json:"fitch_rating" binding:"required"`
	OrderNumber  *int16 `json:"order_number" binding:"required,gte=0,lte=255"`
}

// ToModel maps the DTO onto a domain record.
func (d RatingDTO) ToModel() models.Rating {
	return models.Rating{
		ID:           d.ID,
		MoodysRating: d.MoodysRating,
		SandPRating:  d.SandPRating,
		FitchRating:  d.FitchRating,
		OrderNumber:  d.OrderNumber,
	}
}

// RatingFromModel maps a domain record to its wire representation.
func RatingFromModel(m models.Rating) RatingDTO {
	return RatingDTO{
		ID:           m.ID,
		MoodysRating: m.MoodysRating,
		SandPRating:  m.SandPRating,
		FitchRating:  m.FitchRating,
		OrderNumber:  m.OrderNumber,
	}
}
