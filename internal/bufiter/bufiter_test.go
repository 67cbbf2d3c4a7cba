package bufiter

import (
	"errors"
	"testing"
)

func TestWindowMovesForwardAndBack(t *testing.T) {
	it := FromSlice([]int{1, 2, 3, 4})

	if v, ok := it.Peek(); !ok || v != 1 {
		t.Fatalf("peek: got %d, %v", v, ok)
	}
	if v, ok := it.PeekNext(); !ok || v != 2 {
		t.Fatalf("peekNext: got %d, %v", v, ok)
	}
	if _, ok := it.Previous(); ok {
		t.Fatal("no previous before the first Next")
	}

	if v, _ := it.Next(); v != 1 {
		t.Fatalf("next: got %d", v)
	}
	if v, _ := it.Next(); v != 2 {
		t.Fatalf("next: got %d", v)
	}
	if v, ok := it.Previous(); !ok || v != 2 {
		t.Fatalf("previous: got %d, %v", v, ok)
	}

	it.Back()
	if v, _ := it.Peek(); v != 2 {
		t.Fatalf("after back peek: got %d", v)
	}
	if v, _ := it.PeekNext(); v != 3 {
		t.Fatalf("after back peekNext: got %d", v)
	}
	if _, ok := it.Previous(); ok {
		t.Fatal("previous must be unavailable after Back")
	}

	var rest []int
	for !it.Done() {
		v, _ := it.Next()
		rest = append(rest, v)
	}
	if len(rest) != 3 || rest[0] != 2 || rest[1] != 3 || rest[2] != 4 {
		t.Fatalf("rest: got %v", rest)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("Next past the end must report false")
	}
}

func TestBackAfterPeekNextKeepsOrder(t *testing.T) {
	it := FromSlice([]string{"a", "b", "c"})
	it.Next()
	it.PeekNext() // заполняет next
	it.Back()
	var got []string
	for !it.Done() {
		v, _ := it.Next()
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestDoubleBackPanics(t *testing.T) {
	it := FromSlice([]int{1, 2})
	it.Next()
	it.Back()
	defer func() {
		if recover() == nil {
			t.Fatal("second Back without Next must panic")
		}
	}()
	it.Back()
}

func TestBackBeforeNextPanics(t *testing.T) {
	it := FromSlice([]int{1})
	defer func() {
		if recover() == nil {
			t.Fatal("Back before any Next must panic")
		}
	}()
	it.Back()
}

func TestSourceErrorEndsStream(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	it := New(func() (int, bool, error) {
		calls++
		if calls == 2 {
			return 0, false, boom
		}
		return calls, true, nil
	})
	if v, _ := it.Next(); v != 1 {
		t.Fatalf("got %d", v)
	}
	if !it.Done() {
		t.Fatal("error must end the stream")
	}
	if !errors.Is(it.Err(), boom) {
		t.Fatalf("err: %v", it.Err())
	}
	it.Done()
	if calls != 2 {
		t.Fatalf("source pulled after error: %d calls", calls)
	}
}
