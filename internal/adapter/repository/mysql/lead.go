package mysql

import (
	"context"
	"time"

	leadDomain "simulador-backend/internal/domain/lead"

	"gorm.io/gorm"
)

type LeadRepository struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) *LeadRepository { return &LeadRepository{db: db} }

func (r *LeadRepository) Create(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadRepository) ListSince(ctx context.Context, since time.Time) ([]leadDomain.Lead, error) {
	var out []leadDomain.Lead
	res := r.db.WithContext(ctx).
		Where("submitted_at >= ?", since.UTC()).
		Order("submitted_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
