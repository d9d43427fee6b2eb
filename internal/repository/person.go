package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tolga/wagecalc/internal/model"
)

var ErrPersonNotFound = errors.New("person not found")

// PersonRepository handles person data and its status history.
type PersonRepository struct {
	db *DB
}

// NewPersonRepository creates a new person repository.
func NewPersonRepository(db *DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// GetByID retrieves a person by ID.
func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	var p model.Person
	err := r.db.GORM.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &p, nil
}

// ListStatusHistory retrieves every status-history row for a person.
func (r *PersonRepository) ListStatusHistory(ctx context.Context, personID uuid.UUID) ([]model.PersonStatusHistory, error) {
	var rows []model.PersonStatusHistory
	err := r.db.GORM.WithContext(ctx).Where("entity_id = ?", personID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list person status history: %w", err)
	}
	return rows, nil
}
