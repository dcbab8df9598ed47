package tsp

// indexStack is a bounded LIFO of vertex ids used by the pre-order walk.
// Unlike a zero-value-returning stack, underflow and overflow are errors.
type indexStack struct {
	items []int
	limit int
}

func newIndexStack(limit int) *indexStack {
	return &indexStack{items: make([]int, 0, limit), limit: limit}
}

func (s *indexStack) isEmpty() bool { return len(s.items) == 0 }

func (s *indexStack) push(v int) error {
	if len(s.items) == s.limit {
		return ErrStackFull
	}
	s.items = append(s.items, v)

	return nil
}

func (s *indexStack) peek() (int, error) {
	if s.isEmpty() {
		return NoParent, ErrStackEmpty
	}

	return s.items[len(s.items)-1], nil
}

func (s *indexStack) pop() (int, error) {
	v, err := s.peek()
	if err != nil {
		return v, err
	}
	s.items = s.items[:len(s.items)-1]

	return v, nil
}
