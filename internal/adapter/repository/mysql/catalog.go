package mysql

import (
	"context"
	"errors"

	catalogDomain "simulador-backend/internal/domain/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func orderedVariations(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

func (r *PropertyRepository) List(ctx context.Context) ([]catalogDomain.Property, error) {
	var out []catalogDomain.Property
	res := r.db.WithContext(ctx).
		Preload("Variations", orderedVariations).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*catalogDomain.Property, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// getForShare reads the property under a shared row lock; only meaningful
// inside a transaction.
func (r *PropertyRepository) getForShare(ctx context.Context, id string) (*catalogDomain.Property, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "SHARE"}), id)
}

func (r *PropertyRepository) get(db *gorm.DB, id string) (*catalogDomain.Property, error) {
	var out catalogDomain.Property
	res := db.Preload("Variations", orderedVariations).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, catalogDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
