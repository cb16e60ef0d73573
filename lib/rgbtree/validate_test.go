package rgbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "invalid-parent", InvalidParent.String())
	require.Equal(t, "invalid-decrease", InvalidDecrease.String())
	require.Equal(t, "invalid-order", InvalidOrder.String())
	require.Equal(t, "invalid-balance", InvalidBalance.String())
	require.Equal(t, "unknown", ErrorKind(99).String())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Kind: InvalidOrder}
	require.Contains(t, err.Error(), "invalid-order")
}

func TestValidateDetectsInvalidParent(t *testing.T) {
	tree, insert := buildIntTree(t, 2)
	insert(5)
	child := insert(3)
	child.parent = &Link[int]{}

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, InvalidParent, verr.Kind)
}

func TestValidateDetectsInvalidDecrease(t *testing.T) {
	tree, insert := buildIntTree(t, 2)
	root := insert(5)
	child := insert(3)
	root.color = 1
	child.color = 1

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, InvalidDecrease, verr.Kind)
}

func TestValidateDetectsInvalidOrder(t *testing.T) {
	tree, insert := buildIntTree(t, 2)
	root := insert(5)
	insert(3)
	// Force a key that no longer respects BST order on the left branch.
	swapKey(t, tree, root.children[Left], 10)

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, InvalidOrder, verr.Kind)
}

func TestValidateDetectsInvalidBalance(t *testing.T) {
	tree, insert := buildIntTree(t, 2)
	insert(5)
	insert(3)
	right := insert(8)
	// Manually unbalance: give the right leaf an extra zero-colored
	// level the left side doesn't have.
	extra := &Link[int]{color: 0}
	tree.setChild(right, Left, extra)

	var verr *ValidationError
	err := tree.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, InvalidBalance, verr.Kind)
}

// swapKey rewires the key a link reports without touching tree
// structure, to trigger InvalidOrder deliberately in a controlled test.
func swapKey(t *testing.T, tree *Tree[int], link *Link[int], newKey int) {
	t.Helper()
	orig := tree.getKey
	tree.getKey = func(l *Link[int]) int {
		if l == link {
			return newKey
		}
		return orig(l)
	}
}
