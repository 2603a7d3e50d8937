package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/poseidon-markets/refdata-service/internal/models"
	"gorm.io/gorm"
)

// RuleNameRepository defines the persistence operations for rule definitions.
type RuleNameRepository interface {
	Create(ctx context.Context, rule *models.RuleName) error
	FindByID(ctx context.Context, id int64) (*models.RuleName, error)
	FindAll(ctx context.Context) ([]models.RuleName, error)
	Update(ctx context.Context, rule *models.RuleName) error
	DeleteByID(ctx context.Context, id int64) error
}

type ruleNameRepository struct {
	db *gorm.DB
}

// NewRuleNameRepository creates a new RuleNameRepository instance.
func NewRuleNameRepository(db *gorm.DB) RuleNameRepository {
	return &ruleNameRepository{db: db}
}

func (r *ruleNameRepository) Create(ctx context.Context, rule *models.RuleName) error {
	if err := r.db.WithContext(ctx).Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create rule name: %w", err)
	}
	return nil
}

func (r *ruleNameRepository) FindByID(ctx context.Context, id int64) (*models.RuleName, error) {
	var rule models.RuleName
	err := r.db.WithContext(ctx).First(&rule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rule name by id %d: %w", id, err)
	}
	return &rule, nil
}

func (r *ruleNameRepository) FindAll(ctx context.Context) ([]models.RuleName, error) {
	var rules []models.RuleName
	if err := r.db.WithContext(ctx).Order("id").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list rule names: %w", err)
	}
	return rules, nil
}

func (r *ruleNameRepository) Update(ctx context.Context, rule *models.RuleName) error {
	if err := r.db.WithContext(ctx).Save(rule).Error; err != nil {
		return fmt.Errorf("failed to update rule name id %d: %w", rule.ID, err)
	}
	return nil
}

func (r *ruleNameRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.RuleName{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete rule name id %d: %w", id, err)
	}
	return nil
}
