package collections

import "iter"

// Cursor walks a LinkedList from head to tail. It yields at most as many
// values as the list held when the cursor was created or last reset.
//
// Mutating the list while a cursor is in use leaves that cursor's output
// undefined; take a ToSlice snapshot when the list must change mid-walk.
type Cursor[T any] struct {
	list      *LinkedList[T]
	current   *linkedListNode[T]
	remaining int
}

// Cursor returns a new cursor positioned at the head of the list.
func (l *LinkedList[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{list: l}
	c.Reset()
	return c
}

// Reset moves the cursor back to the current head.
func (c *Cursor[T]) Reset() {
	c.current = c.list.head
	c.remaining = c.list.size
}

// Next returns the next value, or false once the walk is over.
func (c *Cursor[T]) Next() (T, bool) {
	if c.remaining == 0 || c.current == nil {
		var zero T
		return zero, false
	}
	v := c.current.value
	c.current = c.current.next
	c.remaining--
	return v, true
}

// All returns an iterator over the list values from head to tail. Every
// range over the result starts again from the head.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.Cursor()
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
