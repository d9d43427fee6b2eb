package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tolga/wagecalc/internal/model"
)

var ErrShiftKindNotFound = errors.New("shift kind not found")

// ShiftKindRepository handles shift-kind template data access.
type ShiftKindRepository struct {
	db *DB
}

// NewShiftKindRepository creates a new shift-kind repository.
func NewShiftKindRepository(db *DB) *ShiftKindRepository {
	return &ShiftKindRepository{db: db}
}

// GetByCode retrieves a shift kind by its well-known numeric code.
func (r *ShiftKindRepository) GetByCode(ctx context.Context, code model.ShiftKindID) (*model.ShiftKind, error) {
	var sk model.ShiftKind
	err := r.db.GORM.WithContext(ctx).First(&sk, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShiftKindNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift kind: %w", err)
	}
	return &sk, nil
}

// List retrieves every configured shift kind.
func (r *ShiftKindRepository) List(ctx context.Context) ([]model.ShiftKind, error) {
	var kinds []model.ShiftKind
	err := r.db.GORM.WithContext(ctx).Order("code ASC").Find(&kinds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shift kinds: %w", err)
	}
	return kinds, nil
}
