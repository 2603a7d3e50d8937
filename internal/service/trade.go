package service

import (
	"context"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/repository"
)

// TradeService exposes trade operations over the repository.
type TradeService interface {
	Create(ctx context.Context, d dto.TradeDTO) (*dto.TradeDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.TradeDTO, error)
	GetAll(ctx context.Context) ([]dto.TradeDTO, error)
	Update(ctx context.Context, id int64, d dto.TradeDTO) (*dto.TradeDTO, error)
	Delete(ctx context.Context, id int64) (*dto.TradeDTO, error)
}

type tradeService struct {
	repo repository.TradeRepository
}

// NewTradeService creates a new TradeService instance.
func NewTradeService(repo repository.TradeRepository) TradeService {
	return &tradeService{repo: repo}
}

func (s *tradeService) Create(ctx context.Context, d dto.TradeDTO) (*dto.TradeDTO, error) {
	record := d.ToModel()
	record.TradeID = 0
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	created := dto.TradeFromModel(record)
	return &created, nil
}

func (s *tradeService) GetByID(ctx context.Context, id int64) (*dto.TradeDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	d := dto.TradeFromModel(*record)
	return &d, nil
}

func (s *tradeService) GetAll(ctx context.Context) ([]dto.TradeDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TradeDTO, 0, len(records))
	for _, record := range records {
		result = append(result, dto.TradeFromModel(record))
	}
	return result, nil
}

func (s *tradeService) Update(ctx context.Context, id int64, d dto.TradeDTO) (*dto.TradeDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	record := d.ToModel()
	record.TradeID = existing.TradeID
	if err := s.repo.Update(ctx, &record); err != nil {
		return nil, err
	}
	updated := dto.TradeFromModel(record)
	return &updated, nil
}

func (s *tradeService) Delete(ctx context.Context, id int64) (*dto.TradeDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	removed := dto.TradeFromModel(*existing)
	return &removed, nil
}
