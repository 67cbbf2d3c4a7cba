// Package bufiter provides a lookahead/lookbehind window over a pull source.
package bufiter

// Iterator exposes two items of lookahead and one of lookbehind over a lazy
// source. Back undoes exactly one Next; calling it again before the next
// Next panics.
type Iterator[T any] struct {
	pull    func() (T, bool, error)
	slots   [4]slot[T] // previous, current, next, future
	canBack bool
	ended   bool
	err     error
}

type slot[T any] struct {
	value  T
	ok     bool // в слоте есть элемент
	loaded bool // слот уже заполнен из источника
}

const (
	previous = iota
	current
	next
	future
)

// New wraps a pull function. It returns (item, true, nil) per item and
// (_, false, nil) once exhausted; an error also ends the sequence and is
// kept for Err.
func New[T any](pull func() (T, bool, error)) *Iterator[T] {
	return &Iterator[T]{pull: pull}
}

// FromSlice iterates over items.
func FromSlice[T any](items []T) *Iterator[T] {
	i := 0
	return New(func() (T, bool, error) {
		if i >= len(items) {
			var zero T
			return zero, false, nil
		}
		i++
		return items[i-1], true, nil
	})
}

func (it *Iterator[T]) fill(upto int) {
	for i := current; i <= upto; i++ {
		if it.slots[i].loaded {
			continue
		}
		it.slots[i] = it.pullOne()
	}
}

func (it *Iterator[T]) pullOne() slot[T] {
	if it.ended {
		return slot[T]{loaded: true}
	}
	v, ok, err := it.pull()
	if err != nil {
		it.err = err
		it.ended = true
		return slot[T]{loaded: true}
	}
	if !ok {
		it.ended = true
		return slot[T]{loaded: true}
	}
	return slot[T]{value: v, ok: true, loaded: true}
}

// Next returns the current item and moves the window forward.
// At the end it returns false and leaves the window unchanged.
func (it *Iterator[T]) Next() (T, bool) {
	it.fill(current)
	cur := it.slots[current]
	if !cur.ok {
		var zero T
		return zero, false
	}
	it.slots[previous] = cur
	it.slots[current] = it.slots[next]
	it.slots[next] = it.slots[future]
	it.slots[future] = slot[T]{}
	it.canBack = true
	return cur.value, true
}

// Back moves the window one item backwards; Previous is unavailable until
// the next call to Next.
func (it *Iterator[T]) Back() {
	if !it.canBack {
		panic("bufiter: Back called twice without Next")
	}
	it.slots[future] = it.slots[next]
	it.slots[next] = it.slots[current]
	it.slots[current] = it.slots[previous]
	it.slots[previous] = slot[T]{}
	it.canBack = false
}

// Peek returns the current item without consuming it.
func (it *Iterator[T]) Peek() (T, bool) {
	it.fill(current)
	return it.slots[current].value, it.slots[current].ok
}

// PeekNext returns the item after Peek.
func (it *Iterator[T]) PeekNext() (T, bool) {
	it.fill(next)
	return it.slots[next].value, it.slots[next].ok
}

// Previous returns the item most recently returned by Next.
func (it *Iterator[T]) Previous() (T, bool) {
	return it.slots[previous].value, it.slots[previous].ok
}

// Done reports whether the source is exhausted at the current position.
func (it *Iterator[T]) Done() bool {
	it.fill(current)
	return !it.slots[current].ok
}

// Err returns the error that ended the source, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}
