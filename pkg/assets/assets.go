// Package assets is the asset-management demo feature: an identified
// collection with category and tag filters applied as a projection over
// in-memory state.
package assets

import (
	"strings"

	"tableflip.dev/tally/pkg/feature"
	"tableflip.dev/tally/pkg/identified"
)

// ID uniquely identifies an asset.
type ID string

// Asset is a tracked item in the demo inventory.
type Asset struct {
	ID       ID
	Name     string
	Category string
	Tags     []string
}

// Identity implements identified.Identifiable.
func (a Asset) Identity() ID { return a.ID }

// State holds the inventory plus the active filter fields.
type State struct {
	Assets           identified.Array[ID, Asset]
	SelectedCategory string
	Query            string
}

// NewState seeds the inventory.
func NewState(assets ...Asset) State {
	return State{Assets: identified.Of[ID](assets...)}
}

// Action is the closed set of events the feature accepts.
type Action interface {
	isAssetsAction()
}

// BindingChanged applies a filter field write.
type BindingChanged struct {
	feature.Binding[State]
}

func (BindingChanged) isAssetsAction() {}

// SetCategory binds the category filter; empty means all categories.
func SetCategory(v string) BindingChanged {
	return BindingChanged{feature.Bind("selectedCategory", func(s *State) { s.SelectedCategory = v })}
}

// SetQuery binds the free-text filter over names and tags.
func SetQuery(v string) BindingChanged {
	return BindingChanged{feature.Bind("query", func(s *State) { s.Query = v })}
}

// New builds the assets reducer; the feature is entirely binding-driven.
func New() feature.Reducer[State, Action] {
	return feature.BindingReducer(func(a Action) (feature.Binding[State], bool) {
		if b, ok := a.(BindingChanged); ok {
			return b.Binding, true
		}
		return feature.Binding[State]{}, false
	})
}

// Filtered projects the assets matching the active filters, in collection
// order.
func Filtered(s State) []Asset {
	query := strings.ToLower(strings.TrimSpace(s.Query))
	out := make([]Asset, 0, s.Assets.Len())
	for _, a := range s.Assets.All() {
		if s.SelectedCategory != "" && a.Category != s.SelectedCategory {
			continue
		}
		if query != "" && !matches(a, query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a Asset, query string) bool {
	if strings.Contains(strings.ToLower(a.Name), query) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
