// Package veb implements a van Emde Boas tree, an ordered set of
// integers over a bounded universe [0, universe) with O(log log universe)
// membership, insert, delete and successor queries.
package veb

type Tree interface {
	Universe() int
	Len() int
	Min() (int, bool)
	Max() (int, bool)
	Has(x int) bool
	FindNext(x int) (int, bool)
	FindPrev(x int) (int, bool)
	Insert(x int) error
	Delete(x int) error
	Clone() Tree
	Iterator() Iterator
}

type Iterator interface {
	HasNext() bool
	Next() (int, error)
}

// New builds an empty tree over [0, universe). The universe is fixed for
// the lifetime of the tree.
func New(universe int) (Tree, error) {
	if universe < 2 {
		return nil, ErrInvalidUniverse
	}
	if universe > maxUniverse {
		return nil, ErrUniverseTooLarge
	}
	return &tree{
		universe: universe,
		root:     newNode(universe),
	}, nil
}
