package mysql

import (
	"context"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinPropertyTx(ctx context.Context, propertyID string, fn func(r uow.Repos, p *catalog.Property) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		props := &PropertyRepository{db: tx}
		// share-lock the property so it cannot change under the insert
		p, err := props.getForShare(ctx, propertyID)
		if err != nil {
			return err
		}
		return fn(uow.Repos{Properties: props, Leads: &LeadRepository{db: tx}}, p)
	})
}
