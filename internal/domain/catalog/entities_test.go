package catalog

import "testing"

func TestSortByStartingPrice(t *testing.T) {
	ps := []Property{
		{ID: "c", Variations: []Variation{{Price: 500000}}},
		{ID: "empty"},
		{ID: "a", Variations: []Variation{{Price: 200000}, {Price: 100}}},
		{ID: "b", Variations: []Variation{{Price: 300000}}},
	}
	SortByStartingPrice(ps)

	want := []string{"empty", "a", "b", "c"}
	for i, id := range want {
		if ps[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, ps[i].ID, id)
		}
	}
}

func TestProperty_Variation(t *testing.T) {
	p := Property{Variations: []Variation{{ID: "v1", Price: 1}, {ID: "v2", Price: 2}}}

	v, ok := p.Variation("")
	if !ok || v.ID != "v1" {
		t.Fatalf("empty id should pick first, got %+v ok=%v", v, ok)
	}
	v, ok = p.Variation("v2")
	if !ok || v.Price != 2 {
		t.Fatalf("want v2, got %+v ok=%v", v, ok)
	}
	if _, ok := p.Variation("nope"); ok {
		t.Fatal("unknown id should not match")
	}
	if _, ok := (Property{}).Variation(""); ok {
		t.Fatal("property without variations has nothing to select")
	}

	v.Price = 99
	if p.Variations[1].Price != 2 {
		t.Fatal("Variation must return a copy")
	}
}

func TestSampleProperties_Sorted(t *testing.T) {
	ps := SampleProperties()
	if len(ps) == 0 {
		t.Fatal("no sample listings")
	}
	for i := 1; i < len(ps); i++ {
		if ps[i-1].StartingPrice() > ps[i].StartingPrice() {
			t.Fatalf("samples not sorted at %d", i)
		}
	}
}
