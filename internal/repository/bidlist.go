// Package repository provides the data access layer for the refdata service.
//
// Every repository translates gorm's record-not-found into a nil result
// with a nil error; all other storage faults propagate wrapped.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/poseidon-markets/refdata-service/internal/models"
	"gorm.io/gorm"
)

// BidListRepository defines the persistence operations for bid lists.
type BidListRepository interface {
	Create(ctx context.Context, bidList *models.BidList) error
	FindByID(ctx context.Context, id int64) (*models.BidList, error)
	FindAll(ctx context.Context) ([]models.BidList, error)
	Update(ctx context.Context, bidList *models.BidList) error
	DeleteByID(ctx context.Context, id int64) error
}

type bidListRepository struct {
	db *gorm.DB
}

// NewBidListRepository creates a new BidListRepository instance.
func NewBidListRepository(db *gorm.DB) BidListRepository {
	return &bidListRepository{db: db}
}

func (r *bidListRepository) Create(ctx context.Context, bidList *models.BidList) error {
	if err := r.db.WithContext(ctx).Create(bidList).Error; err != nil {
		return fmt.Errorf("failed to create bid list: %w", err)
	}
	return nil
}

func (r *bidListRepository) FindByID(ctx context.Context, id int64) (*models.BidList, error) {
	var bidList models.BidList
	err := r.db.WithContext(ctx).First(&bidList, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bid list by id %d: %w", id, err)
	}
	return &bidList, nil
}

func (r *bidListRepository) FindAll(ctx context.Context) ([]models.BidList, error) {
	var bidLists []models.BidList
	if err := r.db.WithContext(ctx).Order("bid_list_id").Find(&bidLists).Error; err != nil {
		return nil, fmt.Errorf("failed to list bid lists: %w", err)
	}
	return bidLists, nil
}

func (r *bidListRepository) Update(ctx context.Context, bidList *models.BidList) error {
	if err := r.db.WithContext(ctx).Save(bidList).Error; err != nil {
		return fmt.Errorf("failed to update bid list id %d: %w", bidList.BidListID, err)
	}
	return nil
}

func (r *bidListRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.BidList{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete bid list id %d: %w", id, err)
	}
	return nil
}
