// Package ordered provides the insertion-ordered container shared by the
// mask file model. Rendering a List concatenates the renderings of its
// elements, so every level of a mask file serializes the same way.
package ordered

import (
	"fmt"
	"iter"
	"strings"
)

// Element is anything a List can hold: it renders to text and can be
// compared with another element of the same type.
type Element[T any] interface {
	fmt.Stringer
	Equal(other T) bool
}

// List is an append-only sequence that remembers insertion order.
// The zero value is an empty list ready to use.
type List[T Element[T]] struct {
	items []T
}

// New returns a list holding items in order.
func New[T Element[T]](items ...T) *List[T] {
	l := &List[T]{}
	l.Append(items...)
	return l
}

// Append adds items to the end of the list.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// All iterates over index/element pairs in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the i-th element. It panics when i is out of range.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Find returns the first element equal to key.
func (l *List[T]) Find(key T) (T, bool) {
	return l.FindFunc(func(item T) bool { return item.Equal(key) })
}

// FindFunc returns the first element for which match reports true.
func (l *List[T]) FindFunc(match func(T) bool) (T, bool) {
	for _, item := range l.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (l *List[T]) Contains(key T) bool {
	_, ok := l.Find(key)
	return ok
}

func (l *List[T]) String() string {
	var sb strings.Builder
	for _, item := range l.items {
		sb.WriteString(item.String())
	}
	return sb.String()
}
