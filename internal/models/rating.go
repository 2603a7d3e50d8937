package models

// Rating represents a credit rating row combining the three major agencies.
type Rating struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	MoodysRating string `json:"moodys_rating" gorm:"not null"`
	SandPRating  string `json:"sand_p_rating" gorm:"column:sand_p_rating;not null"`
	FitchRating  string `json:"fitch_rating" gorm:"not null"`
	OrderNumber  *int16 `json:"order_number" gorm:"type:smallint"`
}

// TableName returns the database table name for the Rating model.
func (Rating) TableName() string {
	return "ratings"
}
