// Package collections provides small generic containers.
//
// LinkedList is a doubly-linked sequence with constant time Push, Pop,
// Shift and Unshift. Pop and Shift report an empty list through their
// second result rather than an error:
//
//	l := collections.NewLinkedList[int]()
//	l.Push(1)
//	l.Unshift(0)
//	for v := range l.All() {
//	    ...
//	}
//	v, ok := l.Pop()
//
// Stack and Queue adapt a LinkedList to the Deque interface.
// FindLastIndex scans a slice backwards for the last matching value.
//
// # Thread Safety
//
// None of the types lock internally; callers sharing a list between
// goroutines must synchronise access themselves.
package collections
