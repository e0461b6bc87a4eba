package engine

import (
	"testing"

	"dodge/internal/game"
)

func TestRegistry(t *testing.T) {
	built := 0
	opts := Options{
		Config:  game.DefaultConfig(),
		Backend: &stubBackend{},
		GL:      &stubGL{},
		VSync:   newVSyncs().factory,
		Logger:  quietLogger(),
	}
	r := NewRegistry(func(id string) *Instance {
		built++
		return NewInstance(id, opts)
	})

	a, created := r.GetOrCreate("A")
	if !created || a.ID() != "A" {
		t.Fatalf("first GetOrCreate: created=%v id=%s", created, a.ID())
	}
	again, created := r.GetOrCreate("A")
	if created || again != a {
		t.Error("second GetOrCreate built a new instance")
	}
	r.GetOrCreate("B")

	if built != 2 || r.Len() != 2 {
		t.Errorf("built=%d len=%d, expected 2 and 2", built, r.Len())
	}
	if ids := r.IDs(); len(ids) != 2 || ids[0] != "A" || ids[1] != "B" {
		t.Errorf("ids = %v", ids)
	}

	r.Remove("A")
	if _, ok := r.Lookup("A"); ok {
		t.Error("A still registered after remove")
	}
	if _, ok := r.Lookup("B"); !ok {
		t.Error("B lost")
	}
	r.Remove("missing")
}
