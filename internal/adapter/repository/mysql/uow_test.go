package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogDomain "simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/uow"
)

// ----------------------------- Tests -----------------------------

func TestGormUoW_WithinPropertyTx_Rollback(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	seedProperty(t, db, catalogDomain.Property{
		ID: "r-prop", Name: "Recanto",
		Variations: []catalogDomain.Variation{{ID: "r-2q", Price: 250000}},
	})

	guow := NewGormUoW(db)
	leadRepo := NewLeadRepository(db)
	sentinel := errors.New("boom")

	err := guow.WithinPropertyTx(ctx, "r-prop", func(r uow.Repos, _ *catalogDomain.Property) error {
		if err := r.Leads.Create(ctx, makeLead("roll@email.com", time.Now())); err != nil {
			return err
		}
		return sentinel // force rollback
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("WithinPropertyTx: want %v, got %v", sentinel, err)
	}

	got, err := leadRepo.ListSince(ctx, time.Time{})
	if err != nil {
		t.Fatalf("ListSince: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no leads after rollback, got %d", len(got))
	}
}

func TestGormUoW_WithinPropertyTx_Commit(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	seedProperty(t, db, catalogDomain.Property{
		ID: "a-prop", Name: "Aurora",
		Variations: []catalogDomain.Variation{{ID: "a-1q", Price: 300000}},
	})

	guow := NewGormUoW(db)
	err := guow.WithinPropertyTx(ctx, "a-prop", func(r uow.Repos, p *catalogDomain.Property) error {
		if p == nil || p.Name != "Aurora" || len(p.Variations) != 1 {
			t.Fatalf("unexpected property passed to fn: %+v", p)
		}
		l := makeLead("tx@email.com", time.Now())
		l.PropertyName = p.Name
		return r.Leads.Create(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinPropertyTx commit err: %v", err)
	}

	got, _ := NewLeadRepository(db).ListSince(ctx, time.Time{})
	if len(got) != 1 || got[0].PropertyName != "Aurora" {
		t.Fatalf("lead not visible after commit: %+v", got)
	}
}

func TestGormUoW_WithinPropertyTx_MissingProperty(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	called := false
	err := NewGormUoW(db).WithinPropertyTx(ctx, "ghost", func(uow.Repos, *catalogDomain.Property) error {
		called = true
		return nil
	})
	if !errors.Is(err, catalogDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if called {
		t.Fatal("fn must not run without the property")
	}
}
