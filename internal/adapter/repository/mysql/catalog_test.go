package mysql

import (
	"context"
	"errors"
	"testing"

	catalogDomain "simulador-backend/internal/domain/catalog"
)

func TestPropertyRepository_ListAndGet(t *testing.T) {
	db := openSQLite(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	seedProperty(t, db, catalogDomain.Property{
		ID: "b-prop", Name: "Boreal", Neighborhood: "Centro",
		Variations: []catalogDomain.Variation{
			{ID: "b-3q", Position: 1, Price: 520000, BedroomCount: 3},
			{ID: "b-2q", Position: 0, Price: 410000, BedroomCount: 2},
		},
	})
	seedProperty(t, db, catalogDomain.Property{
		ID: "a-prop", Name: "Aurora",
		Variations: []catalogDomain.Variation{{ID: "a-1q", Price: 300000, AreaSqm: 38.5}},
	})

	ps, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ps) != 2 || ps[0].ID != "a-prop" {
		t.Fatalf("List = %+v", ps)
	}
	b := ps[1]
	if len(b.Variations) != 2 || b.Variations[0].ID != "b-2q" {
		t.Fatalf("variations not ordered by position: %+v", b.Variations)
	}
	if b.StartingPrice() != 410000 {
		t.Fatalf("starting price = %v", b.StartingPrice())
	}

	got, err := repo.GetByID(ctx, "a-prop")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Aurora" || len(got.Variations) != 1 || got.Variations[0].AreaSqm != 38.5 {
		t.Fatalf("GetByID = %+v", got)
	}
}

func TestPropertyRepository_GetByID_NotFound(t *testing.T) {
	repo := NewPropertyRepository(openSQLite(t))
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, catalogDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPropertyRepository_List_Empty(t *testing.T) {
	ps, err := NewPropertyRepository(openSQLite(t)).List(context.Background())
	if err != nil || len(ps) != 0 {
		t.Fatalf("List empty: %v %v", ps, err)
	}
}
