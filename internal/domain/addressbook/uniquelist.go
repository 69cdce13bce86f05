package addressbook

import (
	"iter"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UNIQUE LIST
// ══════════════════════════════════════════════════════════════════════════════

// SameFunc decides whether two items collide. The owner of a list picks it
// explicitly: a weak identity for students, full equality for lessons.
type SameFunc[T any] func(a, b T) bool

// UniqueList is an insertion-ordered list in which no two items are the same
// under its SameFunc. Failed operations leave the list untouched.
type UniqueList[T any] struct {
	items    []T
	same     SameFunc[T]
	notFound error
	dup      error
}

// NewUniqueList creates an empty list. notFound and dup are returned when an
// operation misses its target or would introduce a collision.
func NewUniqueList[T any](same SameFunc[T], notFound, dup error) *UniqueList[T] {
	return &UniqueList[T]{same: same, notFound: notFound, dup: dup}
}

// Len returns the number of items.
func (l *UniqueList[T]) Len() int { return len(l.items) }

// Contains reports whether an item the same as item is present.
func (l *UniqueList[T]) Contains(item T) bool {
	return l.indexOf(item) >= 0
}

func (l *UniqueList[T]) indexOf(item T) int {
	for i, existing := range l.items {
		if l.same(existing, item) {
			return i
		}
	}
	return -1
}

// Add appends item.
func (l *UniqueList[T]) Add(item T) error {
	if l.Contains(item) {
		return l.dup
	}
	l.items = append(l.items, item)
	return nil
}

// Set replaces target with replacement at the same position.
func (l *UniqueList[T]) Set(target, replacement T) error {
	i := l.indexOf(target)
	if i < 0 {
		return l.notFound
	}
	for j, existing := range l.items {
		if j != i && l.same(existing, replacement) {
			return l.dup
		}
	}
	l.items[i] = replacement
	return nil
}

// Remove deletes the item the same as item.
func (l *UniqueList[T]) Remove(item T) error {
	i := l.indexOf(item)
	if i < 0 {
		return l.notFound
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return nil
}

// ReplaceAll swaps the whole content for items. It fails without change if items
// contains two colliding entries.
func (l *UniqueList[T]) ReplaceAll(items []T) error {
	if err := checkUnique(items, l.same, l.dup); err != nil {
		return err
	}
	l.items = append([]T(nil), items...)
	return nil
}

// View returns a read-only view over the current content.
func (l *UniqueList[T]) View() View[T] {
	return View[T]{items: append([]T(nil), l.items...)}
}

func checkUnique[T any](items []T, same SameFunc[T], dup error) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if same(items[i], items[j]) {
				return dup
			}
		}
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// READ-ONLY VIEW
// ══════════════════════════════════════════════════════════════════════════════

// View is an immutable, order-preserving sequence. It has no mutating methods and
// Slice hands out copies, so nothing written through a view reaches the list.
type View[T any] struct {
	items []T
}

// ViewOf builds a view over a copy of items.
func ViewOf[T any](items ...T) View[T] {
	return View[T]{items: append([]T(nil), items...)}
}

// Len returns the number of items.
func (v View[T]) Len() int { return len(v.items) }

// At returns the item at the zero-based position i.
func (v View[T]) At(i int) T { return v.items[i] }

// Get returns the item at index, or ErrInvalidIndex when it is out of range.
func (v View[T]) Get(index shared.Index) (T, error) {
	var zero T
	i := index.ZeroBased()
	if i < 0 || i >= len(v.items) {
		return zero, shared.NewDomainError("view", "Get", shared.ErrInvalidIndex,
			"The index provided is invalid for the displayed list")
	}
	return v.items[i], nil
}

// All iterates over positions and items in order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy of the items.
func (v View[T]) Slice() []T {
	return append([]T(nil), v.items...)
}

// Filter returns a view of the items for which keep returns true. A nil keep
// keeps everything.
func (v View[T]) Filter(keep func(T) bool) View[T] {
	if keep == nil {
		return v
	}
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return View[T]{items: out}
}
