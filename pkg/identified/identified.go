// Package identified provides an ordered collection of entities keyed by a
// stable, unique identifier. Iteration preserves insertion order; lookup goes
// through an index. The collection has value semantics: mutating operations
// return a new collection, so it can live inside reducer state without
// aliasing snapshots held by observers.
package identified

import "sort"

// Identifiable is implemented by entities that expose a stable identifier.
// The identifier never changes after creation.
type Identifiable[ID comparable] interface {
	Identity() ID
}

// Array is an ordered, uniquely-keyed collection.
type Array[ID comparable, T Identifiable[ID]] struct {
	items []T
	index map[ID]int
}

// Of builds an Array from items in order. A duplicate identifier replaces the
// earlier occurrence in place.
func Of[ID comparable, T Identifiable[ID]](items ...T) Array[ID, T] {
	a := Array[ID, T]{}
	for _, it := range items {
		a = a.Append(it)
	}
	return a
}

// Len returns the number of entities.
func (a Array[ID, T]) Len() int { return len(a.items) }

// At returns the entity at position i.
func (a Array[ID, T]) At(i int) T { return a.items[i] }

// All returns the entities in order. The returned slice is a copy.
func (a Array[ID, T]) All() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Get looks up an entity by identifier.
func (a Array[ID, T]) Get(id ID) (T, bool) {
	if i, ok := a.index[id]; ok {
		return a.items[i], true
	}
	var zero T
	return zero, false
}

// Contains reports whether an entity with the identifier exists.
func (a Array[ID, T]) Contains(id ID) bool {
	_, ok := a.index[id]
	return ok
}

// InsertFront places the entity at position 0. If the identifier already
// exists the previous occurrence is removed first.
func (a Array[ID, T]) InsertFront(item T) Array[ID, T] {
	items := a.without(item.Identity())
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	return build[ID, T](out)
}

// Append places the entity at the end, replacing any previous occurrence in
// place.
func (a Array[ID, T]) Append(item T) Array[ID, T] {
	if i, ok := a.index[item.Identity()]; ok {
		items := make([]T, len(a.items))
		copy(items, a.items)
		items[i] = item
		return build[ID, T](items)
	}
	items := make([]T, 0, len(a.items)+1)
	items = append(items, a.items...)
	items = append(items, item)
	return build[ID, T](items)
}

// Replace swaps the entity with the matching identifier, keeping its
// position. If the identifier is absent the collection is returned unchanged.
func (a Array[ID, T]) Replace(item T) Array[ID, T] {
	i, ok := a.index[item.Identity()]
	if !ok {
		return a
	}
	items := make([]T, len(a.items))
	copy(items, a.items)
	items[i] = item
	return build[ID, T](items)
}

// Sorted returns a copy ordered by less.
func (a Array[ID, T]) Sorted(less func(x, y T) bool) Array[ID, T] {
	items := make([]T, len(a.items))
	copy(items, a.items)
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return build[ID, T](items)
}

func (a Array[ID, T]) without(id ID) []T {
	items := make([]T, 0, len(a.items))
	for _, it := range a.items {
		if it.Identity() == id {
			continue
		}
		items = append(items, it)
	}
	return items
}

func build[ID comparable, T Identifiable[ID]](items []T) Array[ID, T] {
	index := make(map[ID]int, len(items))
	for i, it := range items {
		index[it.Identity()] = i
	}
	return Array[ID, T]{items: items, index: index}
}
