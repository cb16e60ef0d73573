package rgbtree

import "go.uber.org/zap"

// Insert attaches a caller-owned link whose color/children/parent are
// initially unset. Equal-comparing keys accrete on the left, so a new
// duplicate precedes the equal keys already present in ascending
// order. Find returns whichever equal link is shallowest, which after
// rebalancing rotations need not be the first one inserted — see spec
// §4.3's note on duplicate lookup and DESIGN.md's Open Question on
// stable ordering across a delete/insert cycle.
func (t *Tree[K]) Insert(link *Link[K]) {
	t.assertf(link != nil, "insert: nil link")
	t.assertf(link.parent == nil && link.children[Left] == nil && link.children[Right] == nil,
		"insert: link is already part of a tree")

	if t.root == nil {
		link.color = 0
		t.root = link
		t.count++
		return
	}

	cur, parent, dir := t.root, (*Link[K])(nil), Left
	for cur != nil {
		parent = cur
		if t.compare(t.getKey(link), t.getKey(cur)) == Greater {
			dir = Right
		} else {
			dir = Left
		}
		cur = cur.children[dir]
	}

	t.setChild(parent, dir, link)
	t.count++
	t.setColorFromParent(link, parent)
}

// setColorFromParent colors a freshly-placed link under parent, per
// spec §4.5. It is also reused, unmodified, by repairColorViolation's
// push-down case (§4.6 Case C) to recolor a parent from its
// grandparent — both are "give this node the smallest color legal
// under that ancestor, repairing if that's not possible without
// breaking the zero-balance invariant".
func (t *Tree[K]) setColorFromParent(link, parent *Link[K]) {
	switch {
	case parent.color == 0:
		link.color = t.n
	case parent.color == 1:
		link.color = 1
		t.repairColorViolation(dirOf(parent, link), parent)
	default:
		link.color = parent.color - 1
	}

	t.logger.Debug("colorFromParent",
		zap.Uint8("color", link.color),
		zap.Uint8("parentColor", parent.color),
	)
}
