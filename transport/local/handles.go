package local

// handle is an index into a handleTable. Handle 0 is reserved and always
// invalid.
type handle uint32

type slot[T any] struct {
	value T
	valid bool
}

// handleTable stores values behind small integer handles and reuses freed
// handles. It is not synchronized; the Bus lock guards it.
type handleTable[T any] struct {
	slots    []slot[T]
	freeList []handle
	live     int
}

func newHandleTable[T any]() *handleTable[T] {
	return &handleTable[T]{
		slots:    make([]slot[T], 0, 16),
		freeList: make([]handle, 0, 8),
	}
}

func (t *handleTable[T]) insert(v T) handle {
	t.live++
	s := slot[T]{value: v, valid: true}

	if n := len(t.freeList); n > 0 {
		h := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.slots[h-1] = s
		return h
	}

	t.slots = append(t.slots, s)
	return handle(len(t.slots))
}

func (t *handleTable[T]) get(h handle) (T, bool) {
	var zero T
	if h == 0 || int(h) > len(t.slots) {
		return zero, false
	}
	s := t.slots[h-1]
	if !s.valid {
		return zero, false
	}
	return s.value, true
}

func (t *handleTable[T]) remove(h handle) (T, bool) {
	var zero T
	if h == 0 || int(h) > len(t.slots) {
		return zero, false
	}
	s := &t.slots[h-1]
	if !s.valid {
		return zero, false
	}

	v := s.value
	*s = slot[T]{}
	t.freeList = append(t.freeList, h)
	t.live--
	return v, true
}

func (t *handleTable[T]) len() int {
	return t.live
}

// each calls fn for every live handle until fn returns false.
func (t *handleTable[T]) each(fn func(handle, T) bool) {
	for i, s := range t.slots {
		if s.valid && !fn(handle(i+1), s.value) {
			return
		}
	}
}

func (t *handleTable[T]) clear() {
	t.slots = t.slots[:0]
	t.freeList = t.freeList[:0]
	t.live = 0
}
