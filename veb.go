package veb

import "errors"

const (
	// absent is the value held in min/max while a node stores nothing.
	absent = -1

	// baseUniverse is the span of a leaf node. A leaf keeps its set
	// entirely in min/max and has no summary or clusters.
	baseUniverse = 2

	// maxUniverse caps the requested universe so the per-node cluster
	// slot slice stays small and padding never overflows.
	maxUniverse = 1 << 32
)

var (
	ErrInvalidUniverse  = errors.New("universe size must be at least 2")
	ErrUniverseTooLarge = errors.New("universe size exceeds the addressable range")
	ErrOutOfRange       = errors.New("value outside the universe of the tree")
	ErrNoMoreItems      = errors.New("There are no more items in the tree")
)

type (
	tree struct {
		universe int
		size     int
		root     *node
	}

	// node covers [0, universe) where universe is the requested span
	// padded up to a power of 4 (or 2 for a leaf). min/max cache the
	// extremes; min is never stored in a cluster, which is what keeps
	// the recursion depth at O(log log universe).
	node struct {
		universe int
		shift    uint
		sqrt     int
		mask     int
		min      int
		max      int
		summary  *node
		clusters []*node
	}

	iterator struct {
		tree *tree
		next int
		ok   bool
	}
)
