package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/poseidon-markets/refdata-service/internal/models"
	"gorm.io/gorm"
)

// TradeRepository defines the persistence operations for trades.
type TradeRepository interface {
	Create(ctx context.Context, trade *models.Trade) error
	FindByID(ctx context.Context, id int64) (*models.Trade, error)
	FindAll(ctx context.Context) ([]models.Trade, error)
	Update(ctx context.Context, trade *models.Trade) error
	DeleteByID(ctx context.Context, id int64) error
}

type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository instance.
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Create(ctx context.Context, trade *models.Trade) error {
	if err := r.db.WithContext(ctx).Create(trade).Error; err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}
	return nil
}

func (r *tradeRepository) FindByID(ctx context.Context, id int64) (*models.Trade, error) {
	var trade models.Trade
	err := r.db.WithContext(ctx).First(&trade, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find trade by id %d: %w", id, err)
	}
	return &trade, nil
}

func (r *tradeRepository) FindAll(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	if err := r.db.WithContext(ctx).Order("trade_id").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

func (r *tradeRepository) Update(ctx context.Context, trade *models.Trade) error {
	if err := r.db.WithContext(ctx).Save(trade).Error; err != nil {
		return fmt.Errorf("failed to update trade id %d: %w", trade.TradeID, err)
	}
	return nil
}

func (r *tradeRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Trade{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete trade id %d: %w", id, err)
	}
	return nil
}
