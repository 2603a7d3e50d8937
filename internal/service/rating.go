package service

import (
	"context"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/repository"
)

// RatingService exposes credit rating operations over the repository.
type RatingService interface {
	Create(ctx context.Context, d dto.RatingDTO) (*dto.RatingDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.RatingDTO, error)
	GetAll(ctx context.Context) ([]dto.RatingDTO, error)
	Update(ctx context.Context, id int64, d dto.RatingDTO) (*dto.RatingDTO, error)
	Delete(ctx context.Context, id int64) (*dto.RatingDTO, error)
}

type ratingService struct {
	repo repository.RatingRepository
}

// NewRatingService creates a new RatingService instance.
func NewRatingService(repo repository.RatingRepository) RatingService {
	return &ratingService{repo: repo}
}

func (s *ratingService) Create(ctx context.Context, d dto.RatingDTO) (*dto.RatingDTO, error) {
	record := d.ToModel()
	record.ID = 0
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	created := dto.RatingFromModel(record)
	return &created, nil
}

func (s *ratingService) GetByID(ctx context.Context, id int64) (*dto.RatingDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	d := dto.RatingFromModel(*record)
	return &d, nil
}

func (s *ratingService) GetAll(ctx context.Context) ([]dto.RatingDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RatingDTO, 0, len(records))
	for _, record := range records {
		result = append(result, dto.RatingFromModel(record))
	}
	return result, nil
}

func (s *ratingService) Update(ctx context.Context, id int64, d dto.RatingDTO) (*dto.RatingDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	record := d.ToModel()
	record.ID = existing.ID
	if err := s.repo.Update(ctx, &record); err != nil {
		return nil, err
	}
	updated := dto.RatingFromModel(record)
	return &updated, nil
}

func (s *ratingService) Delete(ctx context.Context, id int64) (*dto.RatingDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	removed := dto.RatingFromModel(*existing)
	return &removed, nil
}
