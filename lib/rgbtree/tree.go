package rgbtree

import (
	"github.com/benz9527/rgbtree/lib/infra"
	"github.com/benz9527/rgbtree/lib/xlog"
)

// Ordering is the three-way result of a CompareFunc. It is a named
// type (not a raw int) because compare is part of this package's
// public surface: the caller supplies it, so its contract deserves
// names instead of magic signs.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// CompareFunc is a caller-supplied total order over K. It must be pure:
// neither it nor GetKeyFunc may mutate tree state.
type CompareFunc[K any] func(a, b K) Ordering

// GetKeyFunc recovers a host record's key from the Link embedded in it.
type GetKeyFunc[K any] func(link *Link[K]) K

// Tree is a single RGB tree of order N. The zero value is not usable;
// build one with New.
type Tree[K any] struct {
	root    *Link[K]
	count   int
	n       uint8
	getKey  GetKeyFunc[K]
	compare CompareFunc[K]
	logger  xlog.Logger
	assert  bool
}

// Option configures a Tree at construction time using the standard
// functional-options idiom.
type Option[K any] func(*Tree[K])

// WithLogger attaches a structured logger that traces rotations,
// repairs and push-downs at debug level. The default is xlog.Nop, so a
// Tree built without this option allocates and emits nothing.
func WithLogger[K any](logger xlog.Logger) Option[K] {
	return func(t *Tree[K]) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithAssertions toggles the debug-only invariant assertions described
// in spec §7. They are enabled by default; disabling them trades
// safety for a small amount of work avoided on the hot path once a
// caller has already fuzz-tested their usage.
func WithAssertions[K any](enabled bool) Option[K] {
	return func(t *Tree[K]) {
		t.assert = enabled
	}
}

// New builds an empty Tree of order n (n must be >= 1), using getKey to
// recover a key from a Link and compare to order keys.
func New[K any](n int, getKey GetKeyFunc[K], compare CompareFunc[K], opts ...Option[K]) (*Tree[K], error) {
	if n < 1 || n > 255 {
		return nil, infra.NewErrorStackf("[rgbtree] order N must be in [1, 255], got %d", n)
	}
	if getKey == nil {
		return nil, infra.NewErrorStack("[rgbtree] getKey must not be nil")
	}
	if compare == nil {
		return nil, infra.NewErrorStack("[rgbtree] compare must not be nil")
	}
	t := &Tree[K]{
		n:       uint8(n),
		getKey:  getKey,
		compare: compare,
		logger:  xlog.Nop(),
		assert:  true,
	}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// N returns the tree's order.
func (t *Tree[K]) N() int {
	return int(t.n)
}

// Len returns the number of links currently in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

// Root returns the tree's root link, or nil if the tree is empty.
func (t *Tree[K]) Root() *Link[K] {
	return t.root
}

// Find descends from the root comparing key to each link's key via
// getKey/compare, returning the first (shallowest) link whose key
// compares Equal, or (nil, false) if none does.
func (t *Tree[K]) Find(key K) (*Link[K], bool) {
	cur := t.root
	for cur != nil {
		switch t.compare(key, t.getKey(cur)) {
		case Equal:
			return cur, true
		case Less:
			cur = cur.children[Left]
		default:
			cur = cur.children[Right]
		}
	}
	return nil, false
}

// First returns the leftmost (minimum-key) link in the tree, or nil if
// the tree is empty.
func (t *Tree[K]) First() *Link[K] {
	return firstFrom(t.root)
}

// Last returns the rightmost (maximum-key) link in the tree, or nil if
// the tree is empty.
func (t *Tree[K]) Last() *Link[K] {
	return lastFrom(t.root)
}

// Next returns v's successor in ascending key order, or nil if v is
// the maximum.
func (t *Tree[K]) Next(v *Link[K]) *Link[K] {
	if v == nil {
		return nil
	}
	if v.children[Right] != nil {
		return firstFrom(v.children[Right])
	}
	cur, p := v, v.parent
	for p != nil && cur == p.children[Right] {
		cur = p
		p = p.parent
	}
	return p
}

// Prev returns v's predecessor in ascending key order, or nil if v is
// the minimum. The direct mirror of Next.
func (t *Tree[K]) Prev(v *Link[K]) *Link[K] {
	if v == nil {
		return nil
	}
	if v.children[Left] != nil {
		return lastFrom(v.children[Left])
	}
	cur, p := v, v.parent
	for p != nil && cur == p.children[Left] {
		cur = p
		p = p.parent
	}
	return p
}
