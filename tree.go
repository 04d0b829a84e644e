package veb

func (t *tree) Universe() int {
	return t.universe
}

func (t *tree) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) Min() (int, bool) {
	if t.root.min == absent {
		return 0, false
	}
	return t.root.min, true
}

func (t *tree) Max() (int, bool) {
	if t.root.max == absent {
		return 0, false
	}
	return t.root.max, true
}

func (t *tree) Has(x int) bool {
	if x < 0 || x >= t.universe {
		return false
	}
	return t.root.has(x)
}

func (t *tree) FindNext(x int) (int, bool) {
	if t.root.max == absent || x >= t.root.max {
		return 0, false
	}
	if x < t.root.min {
		return t.root.min, true
	}
	return t.root.findNext(x)
}

func (t *tree) FindPrev(x int) (int, bool) {
	if t.root.min == absent || x <= t.root.min {
		return 0, false
	}
	if x > t.root.max {
		return t.root.max, true
	}
	return t.root.findPrev(x)
}

func (t *tree) Insert(x int) error {
	if x < 0 || x >= t.universe {
		return ErrOutOfRange
	}
	if t.root.insert(x) {
		t.size++
	}
	return nil
}

func (t *tree) Delete(x int) error {
	if x < 0 || x >= t.universe {
		return ErrOutOfRange
	}
	if t.root.delete(x) {
		t.size--
	}
	return nil
}

func (t *tree) Clone() Tree {
	return &tree{
		universe: t.universe,
		size:     t.size,
		root:     t.root.clone(),
	}
}

func (t *tree) Iterator() Iterator {
	it := &iterator{tree: t}
	it.next, it.ok = t.Min()
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && it.ok
}

func (it *iterator) Next() (int, error) {
	if !it.HasNext() {
		return 0, ErrNoMoreItems
	}
	cur := it.next
	it.next, it.ok = it.tree.FindNext(cur)
	return cur, nil
}
