package assets

import (
	"testing"

	"tableflip.dev/tally/pkg/feature"
)

func inventory() []Asset {
	return []Asset{
		{ID: "A-001", Name: "MacBook Pro 14", Category: "Office Equipment", Tags: []string{"Apple"}},
		{ID: "A-002", Name: "Thunderbolt cable", Category: "Cables"},
		{ID: "A-003", Name: "Magic Trackpad", Category: "Office Equipment", Tags: []string{"Apple", "Input"}},
		{ID: "A-004", Name: "HDMI cable", Category: "Cables", Tags: []string{"Video"}},
		{ID: "A-005", Name: "Standing desk", Category: "Furniture"},
	}
}

func newStore(t *testing.T) *feature.Store[State, Action] {
	t.Helper()
	store := feature.NewStore(NewState(inventory()...), New())
	t.Cleanup(store.Close)
	return store
}

func names(got []Asset) []string {
	out := make([]string, len(got))
	for i, a := range got {
		out[i] = a.Name
	}
	return out
}

func TestUnfilteredKeepsCollectionOrder(t *testing.T) {
	store := newStore(t)
	got := Filtered(store.State())
	if len(got) != 5 {
		t.Fatalf("expected all 5 assets, got %d", len(got))
	}
	if got[0].ID != "A-001" || got[4].ID != "A-005" {
		t.Fatalf("expected collection order, got %v", names(got))
	}
}

func TestCategoryFilter(t *testing.T) {
	store := newStore(t)

	store.Send(SetCategory("Office Equipment"))
	got := Filtered(store.State())
	if len(got) != 2 {
		t.Fatalf("expected 2 office assets, got %v", names(got))
	}
	if got[0].Name != "MacBook Pro 14" || got[1].Name != "Magic Trackpad" {
		t.Fatalf("unexpected order %v", names(got))
	}

	// Empty category means all categories again.
	store.Send(SetCategory(""))
	if got := Filtered(store.State()); len(got) != 5 {
		t.Fatalf("expected the full inventory, got %v", names(got))
	}
}

func TestCategoryFilterMinimalPair(t *testing.T) {
	s := NewState(
		Asset{ID: "1", Name: "Laptop", Category: "Office Equipment", Tags: []string{"Apple"}},
		Asset{ID: "2", Name: "Cable", Category: "Cables"},
	)
	s.SelectedCategory = "Office Equipment"

	got := Filtered(s)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected exactly the office asset, got %v", names(got))
	}
}

func TestQueryMatchesNamesAndTags(t *testing.T) {
	store := newStore(t)

	store.Send(SetQuery("cable"))
	got := Filtered(store.State())
	if len(got) != 2 || got[0].Name != "Thunderbolt cable" || got[1].Name != "HDMI cable" {
		t.Fatalf("expected the two cables, got %v", names(got))
	}

	// Tag matches are case-insensitive and substring-based.
	store.Send(SetQuery("  APPLE "))
	got = Filtered(store.State())
	if len(got) != 2 || got[0].Name != "MacBook Pro 14" || got[1].Name != "Magic Trackpad" {
		t.Fatalf("expected the Apple-tagged assets, got %v", names(got))
	}
}

func TestFiltersCompose(t *testing.T) {
	store := newStore(t)

	store.Send(SetCategory("Cables"))
	store.Send(SetQuery("video"))
	got := Filtered(store.State())
	if len(got) != 1 || got[0].Name != "HDMI cable" {
		t.Fatalf("expected just the HDMI cable, got %v", names(got))
	}

	store.Send(SetQuery("apple"))
	if got := Filtered(store.State()); len(got) != 0 {
		t.Fatalf("expected no matches across composed filters, got %v", names(got))
	}
}

func TestFilteredDoesNotMutateState(t *testing.T) {
	store := newStore(t)
	store.Send(SetQuery("cable"))

	before := store.State()
	_ = Filtered(before)
	after := store.State()
	if before.Assets.Len() != after.Assets.Len() || after.Query != "cable" {
		t.Fatal("expected projection to leave state untouched")
	}
}
