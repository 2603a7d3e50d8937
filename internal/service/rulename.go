package service

import (
	"context"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/repository"
)

// RuleNameService exposes rule definition operations over the repository.
type RuleNameService interface {
	Create(ctx context.Context, d dto.RuleNameDTO) (*dto.RuleNameDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.RuleNameDTO, error)
	GetAll(ctx context.Context) ([]dto.RuleNameDTO, error)
	Update(ctx context.Context, id int64, d dto.RuleNameDTO) (*dto.RuleNameDTO, error)
	Delete(ctx context.Context, id int64) (*dto.RuleNameDTO, error)
}

type ruleNameService struct {
	repo repository.RuleNameRepository
}

// NewRuleNameService creates a new RuleNameService instance.
func NewRuleNameService(repo repository.RuleNameRepository) RuleNameService {
	return &ruleNameService{repo: repo}
}

func (s *ruleNameService) Create(ctx context.Context, d dto.RuleNameDTO) (*dto.RuleNameDTO, error) {
	record := d.ToModel()
	record.ID = 0
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	created := dto.RuleNameFromModel(record)
	return &created, nil
}

func (s *ruleNameService) GetByID(ctx context.Context, id int64) (*dto.RuleNameDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	d := dto.RuleNameFromModel(*record)
	return &d, nil
}

func (s *ruleNameService) GetAll(ctx context.Context) ([]dto.RuleNameDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RuleNameDTO, 0, len(records))
	for _, record := range records {
		result = append(result, dto.RuleNameFromModel(record))
	}
	return result, nil
}

func (s *ruleNameService) Update(ctx context.Context, id int64, d dto.RuleNameDTO) (*dto.RuleNameDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	record := d.ToModel()
	record.ID = existing.ID
	if err := s.repo.Update(ctx, &record); err != nil {
		return nil, err
	}
	updated := dto.RuleNameFromModel(record)
	return &updated, nil
}

func (s *ruleNameService) Delete(ctx context.Context, id int64) (*dto.RuleNameDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	removed := dto.RuleNameFromModel(*existing)
	return &removed, nil
}
