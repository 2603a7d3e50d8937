package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/models"
)

// =============================================================================
// Mock CurvePointRepository
// =============================================================================

type mockCurvePointRepository struct {
	createFunc     func(ctx context.Context, point *models.CurvePoint) error
	findByIDFunc   func(ctx context.Context, id int64) (*models.CurvePoint, error)
	findAllFunc    func(ctx context.Context) ([]models.CurvePoint, error)
	updateFunc     func(ctx context.Context, point *models.CurvePoint) error
	deleteByIDFunc func(ctx context.Context, id int64) error
}

func (m *mockCurvePointRepository) Create(ctx context.Context, point *models.CurvePoint) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, point)
	}
	return errors.New("not implemented")
}

func (m *mockCurvePointRepository) FindByID(ctx context.Context, id int64) (*models.CurvePoint, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCurvePointRepository) FindAll(ctx context.Context) ([]models.CurvePoint, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCurvePointRepository) Update(ctx context.Context, point *models.CurvePoint) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, point)
	}
	return errors.New("not implemented")
}

func (m *mockCurvePointRepository) DeleteByID(ctx context.Context, id int64) error {
	if m.deleteByIDFunc != nil {
		return m.deleteByIDFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func float64Ptr(v float64) *float64 {
	return &v
}

// =============================================================================
// CreationDate Tests
// =============================================================================

func TestCurvePointCreate_StampsCreationDate(t *testing.T) {
	mockRepo := &mockCurvePointRepository{}
	fixed := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := &curvePointService{repo: mockRepo, now: func() time.Time { return fixed }}

	var saved *models.CurvePoint
	mockRepo.createFunc = func(ctx context.Context, point *models.CurvePoint) error {
		point.ID = 3
		saved = point
		return nil
	}

	clientStamp := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), dto.CurvePointDTO{
		CurveID:         int16Ptr(10),
		Term:            float64Ptr(2),
		CurvePointValue: float64Ptr(1.5),
		CreationDate:    clientStamp,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !saved.CreationDate.Equal(fixed) {
		t.Errorf("Create() persisted CreationDate = %v, want server stamp %v", saved.CreationDate, fixed)
	}
	if !created.CreationDate.Equal(fixed) {
		t.Errorf("Create() returned CreationDate = %v, want server stamp %v", created.CreationDate, fixed)
	}
}

func TestCurvePointUpdate_PreservesCreationDate(t *testing.T) {
	mockRepo := &mockCurvePointRepository{}
	svc := NewCurvePointService(mockRepo)

	original := time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)
	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.CurvePoint, error) {
		return &models.CurvePoint{
			ID:           id,
			CurveID:      int16Ptr(10),
			Term:         float64Ptr(2),
			CreationDate: original,
		}, nil
	}

	var saved *models.CurvePoint
	mockRepo.updateFunc = func(ctx context.Context, point *models.CurvePoint) error {
		saved = point
		return nil
	}

	_, err := svc.Update(context.Background(), 3, dto.CurvePointDTO{
		CurveID:         int16Ptr(10),
		Term:            float64Ptr(5),
		CurvePointValue: float64Ptr(2.1),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if !saved.CreationDate.Equal(original) {
		t.Errorf("Update() CreationDate = %v, want original %v", saved.CreationDate, original)
	}
	if saved.Term == nil || *saved.Term != 5 {
		t.Error("Update() should apply the new term")
	}
}

func TestCurvePointUpdate_NotFound(t *testing.T) {
	mockRepo := &mockCurvePointRepository{}
	svc := NewCurvePointService(mockRepo)

	mockRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.CurvePoint, error) {
		return nil, nil
	}

	updated, err := svc.Update(context.Background(), 99, dto.CurvePointDTO{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated != nil {
		t.Error("Update() should return nil for a missing curve point")
	}
}
