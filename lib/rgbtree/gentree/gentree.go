// Package gentree exhaustively enumerates small binary-tree shapes and
// their admissible colorings, for sweeping I1-I3 across every
// combination a tree of a given size could take rather than trusting a
// handful of hand-picked cases.
package gentree

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/benz9527/rgbtree/lib/rgbtree"
)

// shape is an unlabeled binary tree shape. It exists only to drive the
// combinatorics below; it carries no key or color of its own.
type shape struct {
	left, right *shape
}

// shapes enumerates every distinct binary tree shape with exactly
// count nodes: pick how many nodes sit left of the root, recurse on
// both sides, and take every combination — the standard Catalan-number
// construction.
func shapes(count int) []*shape {
	if count == 0 {
		return []*shape{nil}
	}
	var out []*shape
	for leftCount := 0; leftCount < count; leftCount++ {
		rightCount := count - 1 - leftCount
		for _, l := range shapes(leftCount) {
			for _, r := range shapes(rightCount) {
				out = append(out, &shape{left: l, right: r})
			}
		}
	}
	return out
}

// coloring maps every node of some shape to a color in 0..n.
type coloring map[*shape]uint8

// admissibleColors returns the colors a node may take given its
// parent's color, honoring I3: unconstrained at the root, otherwise
// anything strictly less than a non-zero parent, or anything at all
// under a zero parent.
func admissibleColors(n uint8, parentColor uint8, hasParent bool) []uint8 {
	ceiling := lo.Ternary(hasParent && parentColor > 0, parentColor-1, n)
	return lo.Map(lo.Range(int(ceiling)+1), func(i int, _ int) uint8 {
		return uint8(i)
	})
}

// colorings enumerates every I3-admissible coloring of s given the
// color ceiling its parent permits.
func colorings(s *shape, n uint8, parentColor uint8, hasParent bool) []coloring {
	if s == nil {
		return []coloring{{}}
	}
	var out []coloring
	for _, c := range admissibleColors(n, parentColor, hasParent) {
		lefts := colorings(s.left, n, c, true)
		rights := colorings(s.right, n, c, true)
		for _, l := range lefts {
			for _, r := range rights {
				merged := make(coloring, len(l)+len(r)+1)
				merged[s] = c
				for k, v := range l {
					merged[k] = v
				}
				for k, v := range r {
					merged[k] = v
				}
				out = append(out, merged)
			}
		}
	}
	return out
}

// ShapeColoring is one (shape, coloring) pair produced by
// EnumerateShapes.
type ShapeColoring struct {
	root   *shape
	colors coloring
}

// Validate re-checks I1 (trivial: a shape carries no keys, so in-order
// traversal is definitionally ascending once keys are assigned 1,3,
// 5,...) and I3 against this combination, returning an error if the
// enumerator that produced it ever mis-colored a node — a self-check
// on EnumerateShapes itself, not on any rgbtree.Tree.
func (sc *ShapeColoring) Validate(n int) error {
	return validateNode(sc.root, sc.colors, uint8(n), 0, false)
}

func validateNode(s *shape, colors coloring, n, parentColor uint8, hasParent bool) error {
	if s == nil {
		return nil
	}
	c := colors[s]
	if c > n {
		return newGenError("color %d exceeds order N=%d", c, n)
	}
	if hasParent && parentColor > 0 && c >= parentColor {
		return newGenError("color %d violates I3 under parent color %d", c, parentColor)
	}
	if err := validateNode(s.left, colors, n, c, true); err != nil {
		return err
	}
	return validateNode(s.right, colors, n, c, true)
}

// Size returns the node count of this shape.
func (sc *ShapeColoring) Size() int {
	return countNodes(sc.root)
}

func countNodes(s *shape) int {
	if s == nil {
		return 0
	}
	return 1 + countNodes(s.left) + countNodes(s.right)
}

// EnumerateShapes enumerates every binary-tree shape of count nodes
// together with every I3-admissible coloring over colors 0..n.
func EnumerateShapes(n, count int) []*ShapeColoring {
	var out []*ShapeColoring
	for _, s := range shapes(count) {
		pairs := lo.Map(colorings(s, uint8(n), 0, false), func(c coloring, _ int) *ShapeColoring {
			return &ShapeColoring{root: s, colors: c}
		})
		out = append(out, pairs...)
	}
	return out
}

// toSpec converts sc to the shape rgbtree.BuildFromSpec consumes,
// exposing the package-private shape/coloring pair only as the opaque
// color tree BuildFromSpec needs.
func (sc *ShapeColoring) toSpec() *rgbtree.LinkSpec {
	return shapeToSpec(sc.root, sc.colors)
}

func shapeToSpec(s *shape, colors coloring) *rgbtree.LinkSpec {
	if s == nil {
		return nil
	}
	return &rgbtree.LinkSpec{
		Color: colors[s],
		Left:  shapeToSpec(s.left, colors),
		Right: shapeToSpec(s.right, colors),
	}
}

// SweepResult tallies how many (shape, coloring, probe key) combinations
// a Sweep call exercised, so a test can assert it actually covered
// something instead of vacuously passing over an empty enumeration.
type SweepResult struct {
	Combinations int
	InsertProbes int
	RemoveProbes int
}

// Sweep implements the exhaustive small-tree sweep: for every
// I1-I3-admissible (shape, coloring) of count nodes from
// EnumerateShapes(n, count), keys 1, 3, 5, ..., 2*count-1 are assigned
// in-order exactly as the generator promises, and then:
//   - each even key in {0, 2, ..., 2*count} is inserted into a fresh
//     materialized copy via rgbtree.Insert; Validate must return nil or
//     exactly an InvalidBalance error, since BuildFromSpec does not
//     itself enforce I4.
//   - each odd key in {1, 3, ..., 2*count-1} (i.e. every node actually
//     present) is removed from its own fresh materialized copy via
//     rgbtree.Remove; Validate must return nil.
//
// Sweep returns on the first violation of either expectation; a nil
// error means every combination in the sweep behaved as expected.
func Sweep(n, count int) (SweepResult, error) {
	var result SweepResult
	for _, sc := range EnumerateShapes(n, count) {
		result.Combinations++
		spec := sc.toSpec()

		for k := 0; k <= 2*count; k += 2 {
			result.InsertProbes++
			tree, keyOf, err := rgbtree.BuildFromSpec(n, spec)
			if err != nil {
				return result, err
			}
			probe := &rgbtree.Link[int]{}
			keyOf[probe] = k
			tree.Insert(probe)
			if err := validateInsertOutcome(tree); err != nil {
				return result, newGenError("n=%d count=%d insert key=%d: %v", n, count, k, err)
			}
		}

		for k := 1; k < 2*count; k += 2 {
			result.RemoveProbes++
			tree, _, err := rgbtree.BuildFromSpec(n, spec)
			if err != nil {
				return result, err
			}
			link, ok := tree.Find(k)
			if !ok {
				return result, newGenError("n=%d count=%d remove key=%d: key not found in materialized tree", n, count, k)
			}
			tree.Remove(link)
			if err := tree.Validate(); err != nil {
				return result, newGenError("n=%d count=%d remove key=%d: %v", n, count, k, err)
			}
		}
	}
	return result, nil
}

// validateInsertOutcome enforces the sweep's one permitted
// pre-validation failure: BuildFromSpec does not check I4, so a
// materialized shape may already be unbalanced before the probe insert
// ever runs. Any other invariant violation is a real bug.
func validateInsertOutcome(tree *rgbtree.Tree[int]) error {
	err := tree.Validate()
	if err == nil {
		return nil
	}
	var verr *rgbtree.ValidationError
	if errors.As(err, &verr) && verr.Kind == rgbtree.InvalidBalance {
		return nil
	}
	return err
}

func newGenError(format string, args ...any) error {
	return &genError{msg: fmt.Sprintf(format, args...)}
}

type genError struct{ msg string }

func (e *genError) Error() string { return e.msg }
