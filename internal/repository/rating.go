package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/poseidon-markets/refdata-service/internal/models"
	"gorm.io/gorm"
)

// RatingRepository defines the persistence operations for credit ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindByID(ctx context.Context, id int64) (*models.Rating, error)
	FindAll(ctx context.Context) ([]models.Rating, error)
	Update(ctx context.Context, rating *models.Rating) error
	DeleteByID(ctx context.Context, id int64) error
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository instance.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).First(&rating, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rating by id %d: %w", id, err)
	}
	return &rating, nil
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).Order("id").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Save(rating).Error; err != nil {
		return fmt.Errorf("failed to update rating id %d: %w", rating.ID, err)
	}
	return nil
}

func (r *ratingRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Rating{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete rating id %d: %w", id, err)
	}
	return nil
}
