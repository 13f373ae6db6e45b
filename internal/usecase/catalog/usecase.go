package catalog

import (
	"context"
	"errors"
	"fmt"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/metrics"

	"go.uber.org/zap"
)

// Listing is the catalog as served to the wizard. Fallback marks the
// built-in sample listings.
type Listing struct {
	Properties []catalog.Property `json:"properties"`
	Fallback   bool               `json:"fallback"`
}

type Usecase struct {
	repo     catalog.Repository
	fallback bool
	log      *zap.Logger
}

// NewUsecase builds the catalog reader. With fallbackToSample, a store
// failure serves catalog.SampleProperties instead of an error.
func NewUsecase(r catalog.Repository, fallbackToSample bool, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, fallback: fallbackToSample, log: log}
}

// List returns every property sorted by starting price. On store failure it
// returns an empty listing and catalog.ErrUnavailable, unless the sample
// fallback is on.
func (u *Usecase) List(ctx context.Context) (*Listing, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		u.log.Warn("catalog: list failed", zap.Error(err), zap.Bool("fallback", u.fallback))
		if u.fallback {
			metrics.CatalogFetches.WithLabelValues("fallback").Inc()
			return &Listing{Properties: catalog.SampleProperties(), Fallback: true}, nil
		}
		metrics.CatalogFetches.WithLabelValues("error").Inc()
		return &Listing{Properties: []catalog.Property{}}, fmt.Errorf("%w: %v", catalog.ErrUnavailable, err)
	}

	catalog.SortByStartingPrice(ps)
	metrics.CatalogFetches.WithLabelValues("store").Inc()
	if ps == nil {
		ps = []catalog.Property{}
	}
	return &Listing{Properties: ps}, nil
}

// Get returns one property. catalog.ErrNotFound passes through untouched.
func (u *Usecase) Get(ctx context.Context, id string) (*catalog.Property, error) {
	p, err := u.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, catalog.ErrNotFound):
		return nil, err
	}

	u.log.Warn("catalog: get failed", zap.String("property_id", id), zap.Error(err))
	if u.fallback {
		for _, s := range catalog.SampleProperties() {
			if s.ID == id {
				metrics.CatalogFetches.WithLabelValues("fallback").Inc()
				return &s, nil
			}
		}
		return nil, catalog.ErrNotFound
	}
	metrics.CatalogFetches.WithLabelValues("error").Inc()
	return nil, fmt.Errorf("%w: %v", catalog.ErrUnavailable, err)
}
