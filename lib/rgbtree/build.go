package rgbtree

// LinkSpec describes the shape and coloring of one node for
// materializing a tree that ordinary Insert/Remove sequences could
// never reach on their own — used by exhaustive generators that must
// exercise the repair algorithms against adversarial-but-legal
// starting shapes.
type LinkSpec struct {
	Color       uint8
	Left, Right *LinkSpec
}

// BuildFromSpec materializes spec as a real Tree[int], wiring
// parent/children/color directly rather than going through Insert, and
// assigns keys 1, 3, 5, ... to its nodes in in-order (left-root-right)
// order — the same convention the generator uses to label an unlabeled
// shape. It returns the tree alongside the key-lookup table backing its
// GetKeyFunc, so a caller can register further keys (e.g. for a probe
// link about to be inserted) in the same table.
//
// spec may violate I4 (0-height balance): BuildFromSpec does not check
// or enforce it, since the whole point is to materialize shapes the
// real algorithm would never produce, including unbalanced ones.
// Validate reports any such violation the normal way.
func BuildFromSpec(n int, spec *LinkSpec) (*Tree[int], map[*Link[int]]int, error) {
	keyOf := map[*Link[int]]int{}
	getKey := func(l *Link[int]) int { return keyOf[l] }
	compare := func(a, b int) Ordering {
		switch {
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	}
	t, err := New[int](n, getKey, compare)
	if err != nil {
		return nil, nil, err
	}

	next := 1
	var build func(s *LinkSpec, parent *Link[int]) *Link[int]
	build = func(s *LinkSpec, parent *Link[int]) *Link[int] {
		if s == nil {
			return nil
		}
		l := &Link[int]{parent: parent, color: s.Color}
		l.children[Left] = build(s.Left, l)
		keyOf[l] = next
		next += 2
		l.children[Right] = build(s.Right, l)
		return l
	}
	t.root = build(spec, nil)
	t.count = countSpec(spec)
	return t, keyOf, nil
}

func countSpec(s *LinkSpec) int {
	if s == nil {
		return 0
	}
	return 1 + countSpec(s.Left) + countSpec(s.Right)
}
