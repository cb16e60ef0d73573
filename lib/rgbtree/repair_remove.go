package rgbtree

import "go.uber.org/zap"

// allowedUnderN reports whether c could legally become v's child under
// a v colored exactly N: nil always qualifies, and any existing child
// must already be strictly less than N (I3).
func allowedUnderN[K any](c *Link[K], n uint8) bool {
	return c == nil || c.color < n
}

// repairZeroImbalance restores I4 (zero-balance) after a removal left
// the path through v.children[d] one zero-node short of the path
// through v.children[inverse(d)], per spec §4.8.
func (t *Tree[K]) repairZeroImbalance(v *Link[K], d Direction) {
	t.logger.Debug("repairZeroImbalance", zap.String("side", d.String()), zap.Uint8("color", v.color))

	// Step 1 — cheap fix: recolor a non-zero child on the short side to
	// 0, adding one zero back to that path.
	if c := v.children[d]; c != nil && c.color != 0 {
		c.color = 0
		return
	}

	inv := d.Inverse()
	other := v.children[inv]
	t.assertf(other != nil, "repairZeroImbalance: the long side has no node, invariant was already broken")

	if other.color != 0 {
		// Case Z4: bring a deeper subtree up on the affected side. This
		// strictly decreases the color ceiling remaining between the
		// short side and a color-0 node, so recursing on the same node
		// terminates within at most N-1 further Z4 steps.
		t.rotate(d, v)
		t.repairZeroImbalance(v, d)
		return
	}

	oc, od := other.children[d], other.children[inv]

	if allowedUnderN(oc, t.n) && allowedUnderN(od, t.n) {
		// Case Z1: safe to promote other all the way to N. That removes
		// one zero from the long side, equalizing the two sides locally.
		other.color = t.n
		if v.color > 0 {
			v.color = 0
			return
		}
		if v.parent == nil {
			return
		}
		t.repairZeroImbalance(v.parent, dirOfRoot(v.parent, v))
		return
	}

	if od != nil && od.color != 0 {
		// Case Z2: the outer nephew is non-zero.
		od.color = 0
		t.rotate(d, v)
		return
	}

	// Case Z3: the inner nephew is the non-zero one. Double-rotate, the
	// zig-zag analogue of Z2.
	t.assertf(oc != nil && oc.color != 0, "repairZeroImbalance: no Z1/Z2/Z3/Z4 case applies")
	oc.color = 0
	t.rotate(inv, other)
	t.rotate(d, v)
}
