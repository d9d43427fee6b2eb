package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tolga/wagecalc/internal/model"
)

// SabbathTimesRepository handles weekly Sabbath entry/exit data.
type SabbathTimesRepository struct {
	db *DB
}

// NewSabbathTimesRepository creates a new Sabbath-times repository.
func NewSabbathTimesRepository(db *DB) *SabbathTimesRepository {
	return &SabbathTimesRepository{db: db}
}

// ListForRange retrieves every SabbathTimes row whose entry or exit date
// falls within [from, to].
func (r *SabbathTimesRepository) ListForRange(ctx context.Context, from, to time.Time) ([]model.SabbathTimes, error) {
	var rows []model.SabbathTimes
	err := r.db.GORM.WithContext(ctx).
		Where("entry_date BETWEEN ? AND ? OR exit_date BETWEEN ? AND ?", from, to, from, to).
		Order("entry_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sabbath times: %w", err)
	}
	return rows, nil
}
