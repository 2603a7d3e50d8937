package service

import (
	"context"
	"time"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/repository"
)

// CurvePointService exposes curve point operations over the repository.
type CurvePointService interface {
	Create(ctx context.Context, d dto.CurvePointDTO) (*dto.CurvePointDTO, error)
	GetByID(ctx context.Context, id int64) (*dto.CurvePointDTO, error)
	GetAll(ctx context.Context) ([]dto.CurvePointDTO, error)
	Update(ctx context.Context, id int64, d dto.CurvePointDTO) (*dto.CurvePointDTO, error)
	Delete(ctx context.Context, id int64) (*dto.CurvePointDTO, error)
}

type curvePointService struct {
	repo repository.CurvePointRepository
	now  func() time.Time
}

// NewCurvePointService creates a new CurvePointService instance.
func NewCurvePointService(repo repository.CurvePointRepository) CurvePointService {
	return &curvePointService{repo: repo, now: time.Now}
}

func (s *curvePointService) Create(ctx context.Context, d dto.CurvePointDTO) (*dto.CurvePointDTO, error) {
	record := d.ToModel()
	record.ID = 0
	// CreationDate is server-owned: stamped here, never taken from the client.
	record.CreationDate = s.now().UTC()
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	created := dto.CurvePointFromModel(record)
	return &created, nil
}

func (s *curvePointService) GetByID(ctx context.Context, id int64) (*dto.CurvePointDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	d := dto.CurvePointFromModel(*record)
	return &d, nil
}

func (s *curvePointService) GetAll(ctx context.Context) ([]dto.CurvePointDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CurvePointDTO, 0, len(records))
	for _, record := range records {
		result = append(result, dto.CurvePointFromModel(record))
	}
	return result, nil
}

func (s *curvePointService) Update(ctx context.Context, id int64, d dto.CurvePointDTO) (*dto.CurvePointDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	record := d.ToModel()
	record.ID = existing.ID
	record.CreationDate = existing.CreationDate
	if err := s.repo.Update(ctx, &record); err != nil {
		return nil, err
	}
	updated := dto.CurvePointFromModel(record)
	return &updated, nil
}

func (s *curvePointService) Delete(ctx context.Context, id int64) (*dto.CurvePointDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	removed := dto.CurvePointFromModel(*existing)
	return &removed, nil
}
