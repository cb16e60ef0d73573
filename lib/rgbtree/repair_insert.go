package rgbtree

import "go.uber.org/zap"

// repairColorViolation restores I3 (decreasing colors) after an insert
// placed a node whose color equals its parent's, per spec §4.6.
//
// Precondition: v.color > 0 and v.children[d].color == v.color — d
// names the "hot child" that shares v's color. v itself may or may not
// have a parent; if it doesn't, v is the root and the violation is
// fixed by demotion to color 0.
func (t *Tree[K]) repairColorViolation(d Direction, v *Link[K]) {
	parent := v.parent
	if parent == nil {
		v.color = 0
		return
	}

	ld := dirOf(parent, v)
	sibling := parent.children[ld.Inverse()]
	canRotate := sibling == nil || sibling.color < v.color

	t.logger.Debug("repairColorViolation",
		zap.String("hotChild", d.String()),
		zap.String("violationSide", ld.String()),
		zap.Bool("canRotate", canRotate),
		zap.Uint8("color", v.color),
	)

	if canRotate {
		if ld == d {
			// Outer violation: a single rotation at parent restores I3.
			t.rotate(ld.Inverse(), parent)
		} else {
			// Inner violation (zig-zag): rotate v out from under parent
			// first, then rotate parent — the classic double rotation.
			t.rotate(d.Inverse(), v)
			t.rotate(ld.Inverse(), parent)
		}
		return
	}

	if v.color < t.n {
		// Case B: promote v one step. If that now collides with
		// parent's color, the violation has moved up to parent.
		v.color++
		if v.color == parent.color {
			// v is now parent's hot child — it sits at ld under parent,
			// since ld was computed above as dirOf(parent, v) and
			// neither pointer moved, only colors changed.
			t.repairColorViolation(ld, parent)
		}
		return
	}

	// Case C: v is already at the color ceiling and cannot rotate, so
	// parent must be color 0 (I3 under parent would otherwise have
	// forced canRotate). Push both v and its sibling down to 0 and let
	// parent re-derive its color from the grandparent — this preserves
	// 0-height on every path through the subtree (both children gained
	// a zero, the parent lost its one) and may itself produce a new
	// violation one level up, which setColorFromParent handles.
	t.assertf(sibling != nil, "repairColorViolation: push-down requires a sibling")
	v.color = 0
	sibling.color = 0
	if gp := parent.parent; gp != nil {
		t.setColorFromParent(parent, gp)
	} else {
		parent.color = 0
	}
}
