package collections

type linkedListNode[T any] struct {
	value T
	next  *linkedListNode[T]
	prev  *linkedListNode[T]
}

// LinkedList is a doubly-linked sequence supporting constant time insertion
// and removal at both ends. It is not safe for concurrent use.
type LinkedList[T any] struct {
	head *linkedListNode[T]
	tail *linkedListNode[T]
	size int
}

// NewLinkedList returns an empty list.
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len returns the number of values in the list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Push appends v at the tail.
func (l *LinkedList[T]) Push(v T) {
	newNode := &linkedListNode[T]{value: v}
	if l.size == 0 {
		l.head = newNode
		l.tail = newNode
	} else {
		newNode.prev = l.tail
		l.tail.next = newNode
		l.tail = newNode
	}
	l.size++
}

// Unshift prepends v at the head.
func (l *LinkedList[T]) Unshift(v T) {
	newNode := &linkedListNode[T]{value: v}
	if l.size == 0 {
		l.head = newNode
		l.tail = newNode
	} else {
		newNode.next = l.head
		l.head.prev = newNode
		l.head = newNode
	}
	l.size++
}

// Pop removes and returns the tail value. The second result is false when
// the list is empty.
func (l *LinkedList[T]) Pop() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.tail
	l.tail = node.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	node.prev = nil
	l.size--
	return node.value, true
}

// Shift removes and returns the head value. The second result is false when
// the list is empty.
func (l *LinkedList[T]) Shift() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	node.next = nil
	l.size--
	return node.value, true
}

// Front returns the head value without removing it.
func (l *LinkedList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the tail value without removing it.
func (l *LinkedList[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// ToSlice returns a copy of the values from head to tail.
func (l *LinkedList[T]) ToSlice() []T {
	values := make([]T, 0, l.size)
	c := l.Cursor()
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		values = append(values, v)
	}
	return values
}

// Clear empties the list, unlinking every node so that nodes still held by
// a stale cursor do not keep the rest of the chain reachable.
func (l *LinkedList[T]) Clear() {
	for l.head != nil {
		node := l.head
		l.head = node.next
		node.next = nil
		node.prev = nil
	}
	l.tail = nil
	l.size = 0
}
