package rgbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionInverse(t *testing.T) {
	require.Equal(t, Right, Left.Inverse())
	require.Equal(t, Left, Right.Inverse())
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
}

func TestDirOf(t *testing.T) {
	parent := &Link[int]{}
	left := &Link[int]{}
	right := &Link[int]{}
	parent.children[Left] = left
	parent.children[Right] = right

	require.Equal(t, Left, dirOf(parent, left))
	require.Equal(t, Right, dirOf(parent, right))
}

func TestDirOfPanicsOnForeignChild(t *testing.T) {
	parent := &Link[int]{}
	foreign := &Link[int]{}
	require.Panics(t, func() {
		dirOf(parent, foreign)
	})
}

func TestDirOfRootHandlesNilParent(t *testing.T) {
	root := &Link[int]{}
	require.Equal(t, Left, dirOfRoot[int](nil, root))

	parent := &Link[int]{}
	parent.children[Right] = root
	require.Equal(t, Right, dirOfRoot(parent, root))
}
