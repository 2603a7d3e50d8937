package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/poseidon-markets/refdata-service/internal/models"
	"gorm.io/gorm"
)

// CurvePointRepository defines the persistence operations for curve points.
type CurvePointRepository interface {
	Create(ctx context.Context, point *models.CurvePoint) error
	FindByID(ctx context.Context, id int64) (*models.CurvePoint, error)
	FindAll(ctx context.Context) ([]models.CurvePoint, error)
	Update(ctx context.Context, point *models.CurvePoint) error
	DeleteByID(ctx context.Context, id int64) error
}

type curvePointRepository struct {
	db *gorm.DB
}

// NewCurvePointRepository creates a new CurvePointRepository instance.
func NewCurvePointRepository(db *gorm.DB) CurvePointRepository {
	return &curvePointRepository{db: db}
}

func (r *curvePointRepository) Create(ctx context.Context, point *models.CurvePoint) error {
	if err := r.db.WithContext(ctx).Create(point).Error; err != nil {
		return fmt.Errorf("failed to create curve point: %w", err)
	}
	return nil
}

func (r *curvePointRepository) FindByID(ctx context.Context, id int64) (*models.CurvePoint, error) {
	var point models.CurvePoint
	err := r.db.WithContext(ctx).First(&point, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find curve point by id %d: %w", id, err)
	}
	return &point, nil
}

func (r *curvePointRepository) FindAll(ctx context.Context) ([]models.CurvePoint, error) {
	var points []models.CurvePoint
	if err := r.db.WithContext(ctx).Order("id").Find(&points).Error; err != nil {
		return nil, fmt.Errorf("failed to list curve points: %w", err)
	}
	return points, nil
}

func (r *curvePointRepository) Update(ctx context.Context, point *models.CurvePoint) error {
	if err := r.db.WithContext(ctx).Save(point).Error; err != nil {
		return fmt.Errorf("failed to update curve point id %d: %w", point.ID, err)
	}
	return nil
}

func (r *curvePointRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.CurvePoint{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete curve point id %d: %w", id, err)
	}
	return nil
}
