package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algolens/algolens/analyzer/recurrence"
)

func divideEq(a, b int, work recurrence.Work) *recurrence.Equation {
	eq := &recurrence.Equation{
		Shape: recurrence.ShapeDivideConquer,
		Branches: []recurrence.Branch{{
			Transform: recurrence.Transform{Kind: recurrence.Divide, Amount: b},
			Count:     a,
		}},
		Work: work,
	}
	eq.Text = equationText(eq.Branches, work)
	return eq
}

func TestSolveSubstitution(t *testing.T) {
	bound := solveEquation(equationFor(factorialAST()))
	assert.Equal(t, "Θ(n)", bound.String())
	assert.Equal(t, recurrence.MethodSubstitution, bound.Method)
	assert.True(t, bound.Tight)
}

func TestSolveSubstitutionLinearWork(t *testing.T) {
	eq := &recurrence.Equation{
		Shape: recurrence.ShapeLinear,
		Branches: []recurrence.Branch{{
			Transform: recurrence.Transform{Kind: recurrence.Decrement, Amount: 1},
			Count:     1,
		}},
		Work: recurrence.Work{Degree: 1},
		Text: "T(n) = T(n-1) + n",
	}
	bound := solveEquation(eq)
	assert.Equal(t, "Θ(n^2)", bound.String())
}

func TestSolveTreeMethod(t *testing.T) {
	bound := solveEquation(equationFor(fibonacciAST()))
	assert.Equal(t, "Θ(2^n)", bound.String())
	assert.Equal(t, recurrence.MethodTree, bound.Method)
	assert.Contains(t, bound.Explanation, "envelope", "the 2^n simplification is surfaced")
}

func TestSolveMasterCases(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b int
		work recurrence.Work
		want string
	}{
		{"case1LeafDominated", 4, 2, recurrence.Work{Degree: 1}, "n^2"},
		{"case1Fractional", 7, 2, recurrence.Work{Degree: 2}, "n^2.81"},
		{"case2Balanced", 2, 2, recurrence.Work{Degree: 1}, "n log n"},
		{"case2Logarithmic", 1, 2, recurrence.Work{}, "log n"},
		{"case2LogStacking", 2, 2, recurrence.Work{Degree: 1, LogPower: 1}, "n log^2 n"},
		{"case3WorkDominated", 2, 2, recurrence.Work{Degree: 2}, "n^2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			bound := solveEquation(divideEq(tc.a, tc.b, tc.work))
			assert.Equal(t, tc.want, bound.Complexity)
			assert.Equal(t, recurrence.Theta, bound.Notation)
			assert.Equal(t, recurrence.MethodMaster, bound.Method)
			assert.True(t, bound.Tight)
		})
	}
}

func TestSolveMasterIrregularWorkFallsToTree(t *testing.T) {
	bound := solveEquation(divideEq(2, 2, recurrence.Work{Irregular: true}))
	assert.Equal(t, recurrence.MethodTree, bound.Method)
	assert.Equal(t, recurrence.BigO, bound.Notation)
	assert.False(t, bound.Tight)
	assert.Equal(t, "n · f(n)", bound.Complexity)
}

func TestSolveFallback(t *testing.T) {
	bound := solveEquation(equationFor(mixedAST()))
	assert.Equal(t, recurrence.MethodFallback, bound.Method)
	assert.Equal(t, recurrence.BigO, bound.Notation)
	assert.False(t, bound.Tight)
	assert.Equal(t, "O(f(n))", bound.String())
}

func TestSolveIterative(t *testing.T) {
	bound := solveEquation(equationFor(sumLoopAST()))
	assert.Equal(t, "Θ(n)", bound.String())
	assert.Equal(t, recurrence.MethodLoopCount, bound.Method)

	bound = solveEquation(equationFor(bubbleAST()))
	assert.Equal(t, "Θ(n^2)", bound.String())
}

func TestSolveNotesAssumedBaseCase(t *testing.T) {
	eq := equationFor(factorialAST())
	eq.BaseAssumed = true
	bound := solveEquation(eq)
	assert.Contains(t, bound.Explanation, "T(0) = T(1) = c is assumed")

	bound = solveEquation(equationFor(factorialAST()))
	assert.NotContains(t, bound.Explanation, "assumed")
}

func TestFormatPower(t *testing.T) {
	assert.Equal(t, "1", formatPower(0))
	assert.Equal(t, "n", formatPower(1.004))
	assert.Equal(t, "n^2", formatPower(2))
	assert.Equal(t, "n^1.58", formatPower(1.58496))
}
