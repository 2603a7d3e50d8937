// Package service contains the business layer of the refdata service.
// Services accept and return DTOs only; persisted models never cross
// the handler boundary.
package service

import (
	"context"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/repository"
)

// BidListService exposes bid list operations over the repository.
type BidListService interface {
	Create(ctx context.Context, d dto.BidListDTO) (*dto.BidListDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.BidListDTO, error)
	GetAll(ctx context.Context) ([]dto.BidListDTO, error)
	Update(ctx context.Context, id int64, d dto.BidListDTO) (*dto.BidListDTO, error)
	Delete(ctx context.Context, id int64) (*dto.BidListDTO, error)
}

type bidListService struct {
	repo repository.BidListRepository
}

// NewBidListService creates a new BidListService instance.
func NewBidListService(repo repository.BidListRepository) BidListService {
	return &bidListService{repo: repo}
}

func (s *bidListService) Create(ctx context.Context, d dto.BidListDTO) (*dto.BidListDTO, error) {
	record := d.ToModel()
	record.BidListID = 0
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	created := dto.BidListFromModel(record)
	return &created, nil
}

func (s *bidListService) GetByID(ctx context.Context, id int64) (*dto.BidListDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	d := dto.BidListFromModel(*record)
	return &d, nil
}

func (s *bidListService) GetAll(ctx context.Context) ([]dto.BidListDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BidListDTO, 0, len(records))
	for _, record := range records {
		result = append(result, dto.BidListFromModel(record))
	}
	return result, nil
}

func (s *bidListService) Update(ctx context.Context, id int64, d dto.BidListDTO) (*dto.BidListDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	record := d.ToModel()
	record.BidListID = existing.BidListID
	if err := s.repo.Update(ctx, &record); err != nil {
		return nil, err
	}
	updated := dto.BidListFromModel(record)
	return &updated, nil
}

func (s *bidListService) Delete(ctx context.Context, id int64) (*dto.BidListDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	removed := dto.BidListFromModel(*existing)
	return &removed, nil
}
