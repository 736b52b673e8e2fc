package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolens/algolens/analyzer/recurrence"
)

func TestBuildTreeDivideConquer(t *testing.T) {
	eq := equationFor(mergeSortAST())
	tree := buildTree(eq, 3)
	require.NotNil(t, tree)

	assert.Equal(t, "log_2(n)", tree.HeightFormula)
	assert.Equal(t, "n log n", tree.TotalCost)
	assert.True(t, tree.Truncated)

	require.Len(t, tree.Levels, 3)
	assert.Equal(t, "1", tree.Levels[0].NodeCount)
	assert.Equal(t, "1 × n = n", tree.Levels[0].Formula)
	assert.Equal(t, "2", tree.Levels[1].NodeCount)
	assert.Equal(t, "2 × (n/2) = n", tree.Levels[1].Formula)
	assert.Equal(t, "4", tree.Levels[2].NodeCount)
	assert.Equal(t, "4 × (n/4) = n", tree.Levels[2].Formula)

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, -1, root.Parent)
	assert.Equal(t, "n", root.Size)
}

func TestBuildTreeLinear(t *testing.T) {
	eq := equationFor(factorialAST())
	tree := buildTree(eq, 4)
	require.NotNil(t, tree)

	assert.Equal(t, "n - 1", tree.HeightFormula)
	assert.Equal(t, "n", tree.TotalCost)
	require.Len(t, tree.Nodes, 4)
	for i, node := range tree.Nodes {
		assert.Equal(t, i-1, node.Parent)
		assert.Equal(t, "c", node.Work)
	}
	assert.Equal(t, "n-3", tree.Nodes[3].Size)
	assert.Equal(t, "1", tree.Levels[2].NodeCount, "a degenerate path has one node per level")
}

func TestBuildTreeMultiTerm(t *testing.T) {
	eq := equationFor(fibonacciAST())
	tree := buildTree(eq, 3)
	require.NotNil(t, tree)

	assert.Equal(t, "2^n", tree.TotalCost)
	// root plus one representative per branch type per deeper level
	require.Len(t, tree.Nodes, 5)
	assert.Equal(t, "n-1", tree.Nodes[1].Size)
	assert.Equal(t, "n-2", tree.Nodes[2].Size)
	assert.Equal(t, 0, tree.Nodes[1].Parent)
	assert.Equal(t, 1, tree.Nodes[3].Parent, "level two hangs off the leftmost level-one representative")
	assert.Equal(t, "4", tree.Levels[2].NodeCount)
}

func TestBuildTreeAbsentShapes(t *testing.T) {
	assert.Nil(t, buildTree(equationFor(sumLoopAST()), 6))
	assert.Nil(t, buildTree(equationFor(mixedAST()), 6))
}

func TestBuildTreeDepthCap(t *testing.T) {
	eq := equationFor(mergeSortAST())
	tree := buildTree(eq, 2)
	require.NotNil(t, tree)
	assert.Len(t, tree.Levels, 2)
	assert.Equal(t, 2, tree.Depth())
	// the cap truncates the arena, never the symbolic summary
	assert.Equal(t, "log_2(n)", tree.HeightFormula)
	assert.Equal(t, "n log n", tree.TotalCost)
}

// The tree's total cost must agree with the solver's growth class for every
// divide-conquer equation, since both derive from the same Master Theorem
// comparison.
func TestTreeTotalMatchesBound(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b int
		work recurrence.Work
	}{
		{"halving", 1, 2, recurrence.Work{}},
		{"mergeSort", 2, 2, recurrence.Work{Degree: 1}},
		{"karatsubaLike", 3, 2, recurrence.Work{Degree: 1}},
		{"quadTreeSplit", 4, 2, recurrence.Work{Degree: 1}},
		{"workDominated", 2, 2, recurrence.Work{Degree: 2}},
		{"irregularWork", 2, 2, recurrence.Work{Irregular: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			eq := divideEq(tc.a, tc.b, tc.work)
			bound := solveEquation(eq)
			tree := buildTree(eq, 4)
			require.NotNil(t, tree)
			assert.Equal(t, bound.Complexity, tree.TotalCost)
		})
	}
}

func TestWorkAtSize(t *testing.T) {
	assert.Equal(t, "c", workAtSize(recurrence.Work{}, "n/2"))
	assert.Equal(t, "n", workAtSize(recurrence.Work{Degree: 1}, "n"))
	assert.Equal(t, "(n/4)^2", workAtSize(recurrence.Work{Degree: 2}, "n/4"))
	assert.Equal(t, "(n-2) log (n-2)", workAtSize(recurrence.Work{Degree: 1, LogPower: 1}, "n-2"))
	assert.Equal(t, "f(n/2)", workAtSize(recurrence.Work{Irregular: true}, "n/2"))
}
