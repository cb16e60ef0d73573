package rgbtree

import "go.uber.org/zap"

// setChild assigns v.children[d] = c and, if c is non-nil, sets
// c.parent = v. It does not touch the previous occupant of the slot.
func (t *Tree[K]) setChild(v *Link[K], d Direction, c *Link[K]) {
	v.children[d] = c
	if c != nil {
		c.parent = v
	}
}

// replaceChild transplants replacement into child's slot under parent.
// If parent is nil, child is the tree's root, so the tree's root
// pointer is rewritten instead and replacement's parent is cleared.
func (t *Tree[K]) replaceChild(parent, child, replacement *Link[K]) {
	if parent != nil {
		t.setChild(parent, dirOf(parent, child), replacement)
		return
	}
	t.root = replacement
	if replacement != nil {
		replacement.parent = nil
	}
}

// replaceLink transplants subst into head's position: subst adopts
// head's two children and color, and head's former parent now points
// to subst instead. Used when removing an internal node by substituting
// its in-order successor.
func (t *Tree[K]) replaceLink(head, subst *Link[K]) {
	subst.color = head.color
	t.setChild(subst, Left, head.children[Left])
	t.setChild(subst, Right, head.children[Right])
	t.replaceChild(head.parent, head, subst)
}

// rotate performs a single rotation of v in direction d. Written once
// over a direction parameter and its inverse rather than split into
// leftRotate/rightRotate: duplicating it would double the code and
// invite a mirrored-clause bug in exactly the place that matters most.
func (t *Tree[K]) rotate(d Direction, v *Link[K]) {
	inv := d.Inverse()
	p := v.children[inv]
	t.assertf(p != nil, "rotate(%v): child at %v is nil", d, inv)

	oldParent := v.parent
	t.setChild(v, inv, p.children[d])
	t.setChild(p, d, v)
	v.color, p.color = p.color, v.color
	t.replaceChild(oldParent, v, p)

	t.logger.Debug("rotate",
		zap.String("dir", d.String()),
		zap.Uint8("pivotColor", p.color),
		zap.Uint8("childColor", v.color),
	)
}
