package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tolga/wagecalc/internal/model"
)

// ShiftHousingRateRepository handles shift/apartment housing-cluster
// override data and its history.
type ShiftHousingRateRepository struct {
	db *DB
}

// NewShiftHousingRateRepository creates a new shift-housing-rate repository.
func NewShiftHousingRateRepository(db *DB) *ShiftHousingRateRepository {
	return &ShiftHousingRateRepository{db: db}
}

// List retrieves every configured shift-housing-rate row.
func (r *ShiftHousingRateRepository) List(ctx context.Context) ([]model.ShiftHousingRate, error) {
	var rows []model.ShiftHousingRate
	err := r.db.GORM.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shift housing rates: %w", err)
	}
	return rows, nil
}

// ListHistory retrieves every history row for a shift-housing-rate entity.
func (r *ShiftHousingRateRepository) ListHistory(ctx context.Context, id uuid.UUID) ([]model.ShiftHousingRateHistory, error) {
	var rows []model.ShiftHousingRateHistory
	err := r.db.GORM.WithContext(ctx).Where("entity_id = ?", id).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shift housing rate history: %w", err)
	}
	return rows, nil
}
