package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tolga/wagecalc/internal/model"
)

var ErrApartmentNotFound = errors.New("apartment not found")

// ApartmentRepository handles apartment data and its type history.
type ApartmentRepository struct {
	db *DB
}

// NewApartmentRepository creates a new apartment repository.
func NewApartmentRepository(db *DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

// GetByID retrieves an apartment by ID.
func (r *ApartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Apartment, error) {
	var a model.Apartment
	err := r.db.GORM.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	return &a, nil
}

// ListTypeHistory retrieves every type-history row for an apartment, in no
// particular order; callers run these through wageengine.ResolveHistorical.
func (r *ApartmentRepository) ListTypeHistory(ctx context.Context, apartmentID uuid.UUID) ([]model.ApartmentTypeHistory, error) {
	var rows []model.ApartmentTypeHistory
	err := r.db.GORM.WithContext(ctx).Where("entity_id = ?", apartmentID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list apartment type history: %w", err)
	}
	return rows, nil
}
