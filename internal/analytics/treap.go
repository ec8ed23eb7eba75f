package analytics

import "math/rand/v2"

// Treap ordered by score DESC, then user ASC. In-order traversal walks the
// leaderboard from best to worst, with a deterministic tie-break.

type node struct {
	user  string
	score int64
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less reports whether (aScore, aUser) ranks earlier than (bScore, bUser).
func less(aScore int64, aUser string, bScore int64, bUser string) bool {
	if aScore != bScore {
		return aScore > bScore
	}
	return aUser < bUser
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	fix(x)
	fix(y)
	return y
}

func insert(n *node, user string, score int64) *node {
	if n == nil {
		return &node{user: user, score: score, prio: rand.Uint64(), size: 1}
	}
	if less(score, user, n.score, n.user) {
		n.left = insert(n.left, user, score)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, user, score)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func remove(n *node, user string, score int64) *node {
	if n == nil {
		return nil
	}
	switch {
	case score == n.score && user == n.user:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = remove(n.right, user, score)
		} else {
			n = rotateLeft(n)
			n.left = remove(n.left, user, score)
		}
	case less(score, user, n.score, n.user):
		n.left = remove(n.left, user, score)
	default:
		n.right = remove(n.right, user, score)
	}
	fix(n)
	return n
}

// collect appends up to limit users in rank order.
func collect(n *node, limit int, out *[]*node) {
	if n == nil || len(*out) >= limit {
		return
	}
	collect(n.left, limit, out)
	if len(*out) < limit {
		*out = append(*out, n)
	}
	collect(n.right, limit, out)
}
