package collections

import (
	"errors"
	"testing"
)

func TestStackLIFO(t *testing.T) {
	var d Deque[int] = NewStack[int]()
	for i := 0; i < 5; i++ {
		d.Push(i)
	}
	if d.Size() != 5 {
		t.Fatalf("size = %d, want 5", d.Size())
	}
	for want := 4; want >= 0; want-- {
		if v, ok := d.Pop(); !ok || v != want {
			t.Fatalf("Pop = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if _, ok := d.Pop(); ok {
		t.Fatal("Pop on empty stack should report false")
	}
}

func TestQueueFIFO(t *testing.T) {
	var d Deque[string] = NewQueue[string]()
	for _, s := range []string{"a", "b", "c"} {
		d.Push(s)
	}
	for _, want := range []string{"a", "b", "c"} {
		if v, ok := d.Pop(); !ok || v != want {
			t.Fatalf("Pop = (%q, %v), want (%q, true)", v, ok, want)
		}
	}
	if d.Size() != 0 {
		t.Fatalf("size = %d, want 0", d.Size())
	}
	if _, ok := d.Pop(); ok {
		t.Fatal("Pop on empty queue should report false")
	}
}

func isEven(n int) bool { return n%2 == 0 }

func TestFindLastIndex(t *testing.T) {
	tests := []struct {
		in   []int
		pred func(int) bool
		want int
	}{
		{[]int{1, 2, 3, 4}, isEven, 3},
		{[]int{1, 2, 3, 4, 5}, isEven, 3},
		{[]int{1, 2, 3, 4, 5}, func(int) bool { return true }, 4},
		{[]int{1, 3, 5}, isEven, -1},
		{[]int{1, 2, 3, 4, 5}, func(int) bool { return false }, -1},
		{[]int{}, func(int) bool { return true }, -1},
		{nil, func(int) bool { return true }, -1},
	}

	for _, tt := range tests {
		if got := FindLastIndex(tt.in, tt.pred); got != tt.want {
			t.Errorf("FindLastIndex(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFindLastIndexShortCircuits(t *testing.T) {
	calls := 0
	got := FindLastIndex([]int{2, 4, 6, 8}, func(n int) bool {
		calls++
		return isEven(n)
	})
	if got != 3 || calls != 1 {
		t.Fatalf("got index %d after %d calls, want 3 after 1", got, calls)
	}
}

func TestFindLastIndexDoesNotMutate(t *testing.T) {
	in := []int{5, 6, 7}
	FindLastIndex(in, func(int) bool { return false })
	if in[0] != 5 || in[1] != 6 || in[2] != 7 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestFindLastIndexFunc(t *testing.T) {
	in := []string{"a", "b", "a", "c"}

	got := FindLastIndexFunc(in, func(v string, i int, s []string) bool {
		if len(s) != len(in) {
			t.Fatalf("predicate saw slice of length %d", len(s))
		}
		return v == "a" && i < 2
	})
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}

	if got := FindLastIndexFunc([]string{}, func(string, int, []string) bool { return true }); got != -1 {
		t.Fatalf("empty slice: got %d, want -1", got)
	}
}

func TestFindLastIndexPredicatePanicPropagates(t *testing.T) {
	errBoom := errors.New("boom")

	defer func() {
		r := recover()
		if r != errBoom {
			t.Fatalf("recovered %v, want %v", r, errBoom)
		}
	}()

	FindLastIndex([]int{1, 2, 3}, func(int) bool { panic(errBoom) })
	t.Fatal("FindLastIndex should not return when the predicate panics")
}
