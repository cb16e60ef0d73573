package rgbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFromSpecEmpty(t *testing.T) {
	tree, keyOf, err := BuildFromSpec(1, nil)
	require.NoError(t, err)
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Len())
	require.Empty(t, keyOf)
	require.NoError(t, tree.Validate())
}

func TestBuildFromSpecAssignsInOrderKeys(t *testing.T) {
	// shape:      (c0)
	//            /    \
	//        (c1)      (c0)
	//           \
	//          (c0)
	// in-order visits left-root-right: 1, 3, 5, 7 across 4 nodes.
	spec := &LinkSpec{
		Color: 0,
		Left: &LinkSpec{
			Color: 1,
			Right: &LinkSpec{Color: 0},
		},
		Right: &LinkSpec{Color: 0},
	}
	tree, keyOf, err := BuildFromSpec(1, spec)
	require.NoError(t, err)
	require.Equal(t, 4, tree.Len())

	root := tree.Root()
	require.NotNil(t, root)
	require.Equal(t, 5, keyOf[root])
	require.Equal(t, uint8(0), root.Color())

	left := root.Left()
	require.NotNil(t, left)
	require.Equal(t, 1, keyOf[left])
	require.Equal(t, uint8(1), left.Color())
	require.Same(t, root, left.Parent())

	leftRight := left.Right()
	require.NotNil(t, leftRight)
	require.Equal(t, 3, keyOf[leftRight])
	require.Same(t, left, leftRight.Parent())

	right := root.Right()
	require.NotNil(t, right)
	require.Equal(t, 7, keyOf[right])
	require.Same(t, root, right.Parent())

	var got []int
	for l := tree.First(); l != nil; l = tree.Next(l) {
		got = append(got, keyOf[l])
	}
	require.Equal(t, []int{1, 3, 5, 7}, got)
}

func TestBuildFromSpecMayViolateBalance(t *testing.T) {
	// A lone right child under a color-0 root satisfies I1-I3 but not
	// I4: the left path has zero-height 1, the right path 2.
	spec := &LinkSpec{Color: 0, Right: &LinkSpec{Color: 0}}
	tree, _, err := BuildFromSpec(1, spec)
	require.NoError(t, err)

	verr, ok := tree.Validate().(*ValidationError)
	require.True(t, ok)
	require.Equal(t, InvalidBalance, verr.Kind)
}

func TestBuildFromSpecSupportsInsertAndRemove(t *testing.T) {
	// A balanced spec: Remove relies on I4 holding before it runs.
	spec := &LinkSpec{Color: 0, Right: &LinkSpec{Color: 1}}
	tree, keyOf, err := BuildFromSpec(1, spec)
	require.NoError(t, err)

	probe := &Link[int]{}
	keyOf[probe] = 0
	tree.Insert(probe)
	require.Equal(t, 3, tree.Len())

	link, found := tree.Find(3)
	require.True(t, found)
	tree.Remove(link)
	require.Equal(t, 2, tree.Len())
}
