package ontology

// termSet is an append-only collection that never holds two structurally
// equal terms.
//
// Terms are bucketed by their canonical key and every bucket hit is
// confirmed with Equal, so a key collision can never merge distinct terms.
// Items keep insertion order.
type termSet[T Term] struct {
	index map[string][]int
	items []T
}

func newTermSet[T Term]() *termSet[T] {
	return &termSet[T]{index: make(map[string][]int)}
}

// find returns the position of a term equal to v, or -1.
func (s *termSet[T]) find(key string, v T) int {
	for _, i := range s.index[key] {
		if Equal(s.items[i], v) {
			return i
		}
	}
	return -1
}

// insert stores a copy of v unless an equal term is already present.
// It returns the stored term and whether it was newly inserted.
func (s *termSet[T]) insert(v T) (T, bool, error) {
	key, err := termKey(v)
	if err != nil {
		var zero T
		return zero, false, err
	}
	if i := s.find(key, v); i >= 0 {
		return cloneTerm(s.items[i]), false, nil
	}
	s.items = append(s.items, cloneTerm(v))
	s.index[key] = append(s.index[key], len(s.items)-1)
	return cloneTerm(v), true, nil
}

// contains reports whether a term equal to v is present. Terms that cannot
// be keyed (nil parts) are never present.
func (s *termSet[T]) contains(v T) bool {
	key, err := termKey(v)
	if err != nil {
		return false
	}
	return s.find(key, v) >= 0
}

func (s *termSet[T]) len() int {
	return len(s.items)
}

// all returns copies of every stored term in insertion order.
func (s *termSet[T]) all() []T {
	out := make([]T, len(s.items))
	for i, v := range s.items {
		out[i] = cloneTerm(v)
	}
	return out
}

// each calls fn for every stored term without copying.
// fn must not retain or modify the term.
func (s *termSet[T]) each(fn func(T)) {
	for _, v := range s.items {
		fn(v)
	}
}
