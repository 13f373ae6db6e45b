package catalog

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("property not found")
	// ErrUnavailable means the listing store could not be read.
	ErrUnavailable = errors.New("catalog unavailable")
)

type Repository interface {
	// List returns every property with its variations ordered by position.
	List(ctx context.Context) ([]Property, error)
	GetByID(ctx context.Context, id string) (*Property, error)
}
