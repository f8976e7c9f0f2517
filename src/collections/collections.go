package collections

type Deque[T any] interface {
	Push(e T)
	Pop() (T, bool)
	Size() int
}

type Stack[T any] struct {
	list *LinkedList[T]
}

type Queue[T any] struct {
	list *LinkedList[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		list: NewLinkedList[T](),
	}
}

func (s *Stack[T]) Push(e T) {
	s.list.Unshift(e)
}

func (s *Stack[T]) Pop() (T, bool) {
	return s.list.Shift()
}

func (s *Stack[T]) Size() int {
	return s.list.Len()
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		list: NewLinkedList[T](),
	}
}

func (q *Queue[T]) Push(e T) {
	q.list.Push(e)
}

func (q *Queue[T]) Pop() (T, bool) {
	return q.list.Shift()
}

func (q *Queue[T]) Size() int {
	return q.list.Len()
}
