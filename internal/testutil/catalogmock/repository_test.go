package catalogmock

import (
	"context"
	"errors"
	"testing"

	domain "simulador-backend/internal/domain/catalog"
)

func TestRepo_List(t *testing.T) {
	ctx := context.Background()
	want := []domain.Property{{ID: "p1"}}

	m := &Repo{ListFn: func(gotCtx context.Context) ([]domain.Property, error) {
		if gotCtx != ctx {
			t.Fatalf("List ctx mismatch")
		}
		return want, nil
	}}
	got, err := m.List(ctx)
	if err != nil || len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("List: got %v, %v", got, err)
	}

	// Default → empty, nil
	got, err = (&Repo{}).List(ctx)
	if err != nil || got != nil {
		t.Fatalf("List default: got %v, %v", got, err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	m := &Repo{GetByIDFn: func(_ context.Context, id string) (*domain.Property, error) {
		return &domain.Property{ID: id}, nil
	}}
	got, err := m.GetByID(ctx, "p9")
	if err != nil || got.ID != "p9" {
		t.Fatalf("GetByID: got %v, %v", got, err)
	}

	// Default → ErrNotFound
	if _, err := (&Repo{}).GetByID(ctx, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID default: want ErrNotFound, got %v", err)
	}
}
