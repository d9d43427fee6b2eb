package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tolga/wagecalc/internal/model"
)

var ErrReportNotFound = errors.New("report not found")

// ReportRepository handles time-report data access.
type ReportRepository struct {
	db *DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// GetByID retrieves a report by ID.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	err := r.db.GORM.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// GetByPersonAndRange retrieves every report for a person whose date falls
// within [from, to], inclusive. Callers widen the range by a day on each
// side to cover work-day boundary attribution (spec §4.1).
func (r *ReportRepository) GetByPersonAndRange(ctx context.Context, personID uuid.UUID, from, to time.Time) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.GORM.WithContext(ctx).
		Where("person_id = ? AND date BETWEEN ? AND ?", personID, from, to).
		Order("date ASC, \"start\" ASC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// Create creates a new time report.
func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.GORM.WithContext(ctx).Create(report).Error
}
