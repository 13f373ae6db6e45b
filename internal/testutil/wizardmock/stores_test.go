package wizardmock

import (
	"context"
	"errors"
	"testing"

	domain "simulador-backend/internal/domain/wizard"
)

func TestFlags(t *testing.T) {
	ctx := context.Background()
	f := &Flags{}
	if ok, err := f.Completed(ctx, "v"); ok || err != nil {
		t.Fatalf("Completed default: %v, %v", ok, err)
	}
	if err := f.SetCompleted(ctx, "v", true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if ok, _ := f.Completed(ctx, "v"); !ok || f.Sets != 1 {
		t.Fatalf("Completed after set: %v sets=%d", ok, f.Sets)
	}

	f.Err = errors.New("down")
	if _, err := f.Completed(ctx, "v"); err == nil {
		t.Fatal("want error")
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	s := &Sessions{}
	if _, err := s.Get(ctx, "x"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Get unknown: %v", err)
	}

	sess := &domain.Session{ID: "x", VisitorID: "v"}
	if err := s.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sess.VisitorID = "mutated"
	got, err := s.Get(ctx, "x")
	if err != nil || got.VisitorID != "v" {
		t.Fatalf("Get: %+v, %v", got, err)
	}
}
