package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tolga/wagecalc/internal/model"
)

// StandbyRateRepository handles on-call rate data and its amount history.
type StandbyRateRepository struct {
	db *DB
}

// NewStandbyRateRepository creates a new standby-rate repository.
func NewStandbyRateRepository(db *DB) *StandbyRateRepository {
	return &StandbyRateRepository{db: db}
}

// List retrieves every configured standby rate.
func (r *StandbyRateRepository) List(ctx context.Context) ([]model.StandbyRate, error) {
	var rates []model.StandbyRate
	err := r.db.GORM.WithContext(ctx).Find(&rates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list standby rates: %w", err)
	}
	return rates, nil
}

// ListAmountHistory retrieves every amount-history row for a standby rate.
func (r *StandbyRateRepository) ListAmountHistory(ctx context.Context, rateID uuid.UUID) ([]model.StandbyRateHistory, error) {
	var rows []model.StandbyRateHistory
	err := r.db.GORM.WithContext(ctx).Where("entity_id = ?", rateID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list standby rate history: %w", err)
	}
	return rows, nil
}
