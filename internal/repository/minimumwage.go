package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tolga/wagecalc/internal/model"
)

var ErrMinimumWageNotFound = errors.New("no minimum wage rate on file")

// MinimumWageRepository handles minimum-wage rate data.
type MinimumWageRepository struct {
	db *DB
}

// NewMinimumWageRepository creates a new minimum-wage repository.
func NewMinimumWageRepository(db *DB) *MinimumWageRepository {
	return &MinimumWageRepository{db: db}
}

// GetEffectiveFor retrieves the latest minimum-wage row effective on or
// before the first day of (year, month).
func (r *MinimumWageRepository) GetEffectiveFor(ctx context.Context, year, month int) (*model.MinimumWage, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var rate model.MinimumWage
	err := r.db.GORM.WithContext(ctx).
		Where("effective_from <= ?", monthStart).
		Order("effective_from DESC").
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMinimumWageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get minimum wage: %w", err)
	}
	return &rate, nil
}
