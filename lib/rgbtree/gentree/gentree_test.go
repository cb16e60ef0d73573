package gentree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShapesCatalanCounts(t *testing.T) {
	// Catalan numbers: C0=1, C1=1, C2=2, C3=5, C4=14.
	want := []int{1, 1, 2, 5, 14}
	for count, expected := range want {
		require.Len(t, shapes(count), expected, "count=%d", count)
	}
}

func TestEnumerateShapesEveryResultValidates(t *testing.T) {
	for n := 1; n <= 3; n++ {
		for count := 0; count <= 4; count++ {
			for _, sc := range EnumerateShapes(n, count) {
				require.NoError(t, sc.Validate(n))
				require.Equal(t, count, sc.Size())
			}
		}
	}
}

func TestEnumerateShapesNonEmpty(t *testing.T) {
	require.NotEmpty(t, EnumerateShapes(2, 3))
	require.Len(t, EnumerateShapes(1, 0), 1)
}

// TestSweepMatchesBudgets exhaustively sweeps every I1-I3-admissible
// shape+coloring up to each order's budget (>= 9 for N=1, >= 7 for
// N=2, >= 5 for N=3), materializing each as a real tree, probing a
// fresh copy with one insert per even key and one removal per node,
// and validating.
func TestSweepMatchesBudgets(t *testing.T) {
	budgets := map[int]int{1: 9, 2: 7, 3: 5}
	for n, budget := range budgets {
		for count := 0; count <= budget; count++ {
			result, err := Sweep(n, count)
			require.NoError(t, err, "n=%d count=%d", n, count)
			require.Equal(t, len(EnumerateShapes(n, count)), result.Combinations)
			require.Equal(t, result.Combinations*(count+1), result.InsertProbes)
			require.Equal(t, result.Combinations*count, result.RemoveProbes)
		}
	}
}

func TestSweepCoversNonTrivialCombinations(t *testing.T) {
	result, err := Sweep(2, 7)
	require.NoError(t, err)
	require.Greater(t, result.Combinations, 1)
	require.Greater(t, result.InsertProbes, 0)
	require.Greater(t, result.RemoveProbes, 0)
}
