package veb

import "math/bits"

// newNode allocates an empty node for the given span. The span is padded
// up to the next power of 4 so that universe == sqrt*sqrt holds exactly;
// callers never see padded values because the tree rejects out-of-range
// input against the requested universe.
func newNode(span int) *node {
	u := padSpan(span)
	n := &node{
		universe: u,
		min:      absent,
		max:      absent,
	}
	if u > baseUniverse {
		n.shift = uint(bits.Len(uint(u))-1) / 2
		n.sqrt = 1 << n.shift
		n.mask = n.sqrt - 1
		// summary spans the cluster indices; clusters start out empty
		// and are materialized on first insert
		n.summary = newNode(n.sqrt)
		n.clusters = make([]*node, n.sqrt)
	}
	return n
}

// padSpan rounds span up to the next power of 4, or to 2 for the leaf
// case. Splitting is done on bit lengths, not floating point logs, so the
// high/low/index bijection is exact for every node.
func padSpan(span int) int {
	if span <= baseUniverse {
		return baseUniverse
	}
	l := bits.Len(uint(span - 1))
	if l%2 != 0 {
		l++
	}
	return 1 << l
}

// high is the index of the cluster containing x.
func (n *node) high(x int) int {
	return x >> n.shift
}

// low is the position of x within its cluster.
func (n *node) low(x int) int {
	return x & n.mask
}

// index rebuilds a value from a cluster index and a position, the inverse
// of (high, low).
func (n *node) index(hi, lo int) int {
	return hi<<n.shift | lo
}

func (n *node) has(x int) bool {
	if x == n.min || x == n.max {
		return true
	}
	if n.universe == baseUniverse {
		return false
	}
	c := n.clusters[n.high(x)]
	return c != nil && c.has(n.low(x))
}

// findNext returns the smallest stored value strictly greater than x.
func (n *node) findNext(x int) (int, bool) {
	if n.universe == baseUniverse {
		if x == 0 && n.max == 1 {
			return 1, true
		}
		return 0, false
	}
	if n.min != absent && x < n.min {
		return n.min, true
	}
	hi, lo := n.high(x), n.low(x)
	if c := n.clusters[hi]; c != nil && lo < c.max {
		next, _ := c.findNext(lo)
		return n.index(hi, next), true
	}
	// successor is the minimum of the next non-empty cluster, one
	// summary probe away
	nextHi, ok := n.summary.findNext(hi)
	if !ok {
		return 0, false
	}
	return n.index(nextHi, n.clusters[nextHi].min), true
}

// findPrev returns the largest stored value strictly less than x. Unlike
// findNext it must fall back on the cached min, which is never stored in
// any cluster.
func (n *node) findPrev(x int) (int, bool) {
	if n.universe == baseUniverse {
		if x == 1 && n.min == 0 {
			return 0, true
		}
		return 0, false
	}
	if n.max != absent && x > n.max {
		return n.max, true
	}
	hi, lo := n.high(x), n.low(x)
	if c := n.clusters[hi]; c != nil && lo > c.min {
		prev, _ := c.findPrev(lo)
		return n.index(hi, prev), true
	}
	if prevHi, ok := n.summary.findPrev(hi); ok {
		return n.index(prevHi, n.clusters[prevHi].max), true
	}
	if n.min != absent && x > n.min {
		return n.min, true
	}
	return 0, false
}

// insert adds x and reports whether the set changed. Duplicates are
// detected against the min/max cache before the swap step, so a repeated
// insert never reaches a cluster.
func (n *node) insert(x int) bool {
	if n.min == absent {
		n.min, n.max = x, x
		return true
	}
	if x == n.min || x == n.max {
		return false
	}
	if x < n.min {
		// the old minimum is the value pushed down; the new minimum
		// lives only in the cache
		n.min, x = x, n.min
	}
	if n.universe > baseUniverse {
		hi, lo := n.high(x), n.low(x)
		c := n.clusters[hi]
		if c == nil {
			c = newNode(n.sqrt)
			c.min, c.max = lo, lo
			n.clusters[hi] = c
			// first value in this cluster, mark it in the summary
			n.summary.insert(hi)
		} else if !c.insert(lo) {
			return false
		}
	}
	if x > n.max {
		n.max = x
	}
	return true
}

// delete removes x and reports whether it was present. Deleting an absent
// value leaves the node untouched.
func (n *node) delete(x int) bool {
	if n.min == absent {
		return false
	}
	if n.min == n.max {
		if x != n.min {
			return false
		}
		n.min, n.max = absent, absent
		return true
	}
	if n.universe == baseUniverse {
		// both 0 and 1 are present, keep the other one
		n.min = 1 - x
		n.max = n.min
		return true
	}
	if x == n.min {
		// the cached minimum was never stored recursively; promote
		// the next value to the cache and remove that one instead
		c0 := n.summary.min
		x = n.index(c0, n.clusters[c0].min)
		n.min = x
	}
	hi := n.high(x)
	c := n.clusters[hi]
	if c == nil {
		return false
	}
	if !c.delete(n.low(x)) {
		return false
	}
	if c.min == absent {
		n.clusters[hi] = nil
		n.summary.delete(hi)
	}
	if x == n.max {
		if n.summary.min == absent {
			n.max = n.min
		} else {
			hiMax := n.summary.max
			n.max = n.index(hiMax, n.clusters[hiMax].max)
		}
	}
	return true
}

// clone deep-copies the node and everything it owns.
func (n *node) clone() *node {
	c := *n
	if n.summary != nil {
		c.summary = n.summary.clone()
	}
	if n.clusters != nil {
		c.clusters = make([]*node, len(n.clusters))
		for i, child := range n.clusters {
			if child != nil {
				c.clusters[i] = child.clone()
			}
		}
	}
	return &c
}
