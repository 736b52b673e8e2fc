package analyzer

import (
	"fmt"
	"strings"

	"github.com/algolens/algolens/analyzer/recurrence"
)

// classifyCategory is the single algorithm-category authority: an ordered,
// first-match rule set over (equation shape, bound). The function name never
// participates, so narratives can never drift from the mathematics.
//
// Single-branch divide-conquer equations produce log-factor bounds of their
// own; they are claimed by the prune-search rule, so the logarithmic-search
// rule only fires for log bounds that did not come from a divide-conquer
// equation.
func classifyCategory(eq *recurrence.Equation, bound recurrence.Bound) recurrence.Category {
	switch {
	case hasPureLogFactor(bound.Complexity) && eq.Shape != recurrence.ShapeDivideConquer:
		return recurrence.CategoryLogarithmicSearch
	case eq.Shape == recurrence.ShapeMultiTermLinear && len(eq.Branches) == 2 && eq.BranchCount() == 2:
		return recurrence.CategoryDoubleRecursive
	case eq.Shape == recurrence.ShapeDivideConquer && strings.Contains(bound.Complexity, "n log") && eq.BranchCount() >= 2:
		return recurrence.CategoryBalancedDivideConquer
	case eq.Shape == recurrence.ShapeDivideConquer && eq.BranchCount() == 1:
		return recurrence.CategoryPruneSearch
	case eq.Shape == recurrence.ShapeLinear:
		return recurrence.CategoryLinearRecursive
	default:
		return recurrence.CategoryGeneric
	}
}

// hasPureLogFactor reports a log factor without an accompanying n· term,
// e.g. "log n" or "log^2 n" but not "n log n".
func hasPureLogFactor(complexity string) bool {
	return strings.HasPrefix(complexity, "log")
}

// buildCases derives the three scenario narratives from the already-decided
// category. Each narrative embeds the real function name and a concrete
// instantiated example; vocabulary is kept disjoint across categories.
func buildCases(name string, eq *recurrence.Equation, bound recurrence.Bound) recurrence.CaseSet {
	category := classifyCategory(eq, bound)
	boundText := bound.String()
	const constant = "Θ(1)"

	set := recurrence.CaseSet{Category: category}
	switch category {
	case recurrence.CategoryLogarithmicSearch:
		set.Best = caseAnalysis(recurrence.BestCase, constant,
			"The very first probe lands on the target.",
			fmt.Sprintf("%s over [1,2,3,4,5] looking for 3: the initial midpoint already holds 3.", name),
			"The search space never needs to shrink; one comparison decides the result.")
		set.Worst = caseAnalysis(recurrence.WorstCase, boundText,
			"The target is found only when a single candidate remains, or is absent.",
			fmt.Sprintf("%s over 1024 candidates narrows 1024 → 512 → ... → 1 in 10 halvings.", name),
			fmt.Sprintf("Each probe halves the remaining candidates, so the halving count follows %s.", eq.Text))
		set.Average = caseAnalysis(recurrence.AverageCase, boundText,
			"A uniformly random target position still needs a logarithmic number of probes in expectation.",
			fmt.Sprintf("Averaging %s over every target position leaves the probe count logarithmic.", name),
			"Half of all positions are reached only in the last halving rounds, which dominate the expectation.")

	case recurrence.CategoryDoubleRecursive:
		shared := fmt.Sprintf("%s(10) expands %s(9) and %s(8), whose subproblems overlap all the way down to the base cases.", name, name, name)
		explain := fmt.Sprintf("Both recursive terms of %s are evaluated unconditionally; input values cannot prune the expansion, so best, worst and average coincide.", eq.Text)
		set.Best = caseAnalysis(recurrence.BestCase, boundText,
			"Every call past the base cases fans out into both recursive terms.", shared, explain)
		set.Worst = caseAnalysis(recurrence.WorstCase, boundText,
			"Identical to the best case: the full double expansion always happens.", shared, explain)
		set.Average = caseAnalysis(recurrence.AverageCase, boundText,
			"Identical to the best and worst cases.", shared, explain)

	case recurrence.CategoryBalancedDivideConquer:
		shared := fmt.Sprintf("%s on 8 elements runs 3 split levels, each doing linear recombination work.", name)
		explain := fmt.Sprintf("The split count in %s depends on the input size only, never on the arrangement of the data.", eq.Text)
		set.Best = caseAnalysis(recurrence.BestCase, boundText,
			"The input is split into equal halves at every level regardless of its initial arrangement.", shared, explain)
		set.Worst = caseAnalysis(recurrence.WorstCase, boundText,
			"Identical to the best case: the balanced splitting is unconditional.", shared, explain)
		set.Average = caseAnalysis(recurrence.AverageCase, boundText,
			"Identical to the best and worst cases.", shared, explain)

	case recurrence.CategoryPruneSearch:
		set.Best = caseAnalysis(recurrence.BestCase, constant,
			"The answer is decided before any subproblem is opened.",
			fmt.Sprintf("%s(n) where the first size check already settles the result.", name),
			"No recursive step runs, so only constant work remains.")
		set.Worst = caseAnalysis(recurrence.WorstCase, boundText,
			"Every step discards a constant fraction and keeps exactly one subproblem until the smallest size remains.",
			fmt.Sprintf("%s(n) shrinks n to n/%d repeatedly until the base size.", name, maxInt(eq.Divisor(), 2)),
			fmt.Sprintf("The single kept subproblem gives the full depth of %s.", eq.Text))
		set.Average = caseAnalysis(recurrence.AverageCase, boundText,
			"Stopping early is possible but the expected depth stays within the derived bound.",
			fmt.Sprintf("Averaged over inputs, %s still descends through a logarithmic number of sizes.", name),
			"Early termination shaves levels, not the asymptotic class.")

	case recurrence.CategoryLinearRecursive:
		set.Best = caseAnalysis(recurrence.BestCase, constant,
			"The base case is reached immediately.",
			fmt.Sprintf("%s(0) returns directly without a recursive step.", name),
			"Only the base-case work runs.")
		set.Worst = caseAnalysis(recurrence.WorstCase, boundText,
			"The recursion unrolls all the way from n down to the base case.",
			fmt.Sprintf("%s(n) performs one call per size value between n and the base case.", name),
			fmt.Sprintf("Each level contributes f(n) once, so the unrolled sum of %s decides the cost.", eq.Text))
		set.Average = caseAnalysis(recurrence.AverageCase, boundText,
			"A typical argument still unrolls a linear number of levels.",
			fmt.Sprintf("%s(n/2) already performs on the order of n/2 calls.", name),
			"The unroll length scales linearly with the argument.")

	default:
		shared := fmt.Sprintf("%s(n) follows the derived equation for any input of size n.", name)
		explain := "The derived bound does not depend on the arrangement of the input."
		set.Best = caseAnalysis(recurrence.BestCase, boundText,
			"No input arrangement changes the executed structure.", shared, explain)
		set.Worst = caseAnalysis(recurrence.WorstCase, boundText,
			"Identical to the best case.", shared, explain)
		set.Average = caseAnalysis(recurrence.AverageCase, boundText,
			"Identical to the best and worst cases.", shared, explain)
	}
	return set
}

func caseAnalysis(kind recurrence.CaseKind, complexity, scenario, example, explanation string) recurrence.CaseAnalysis {
	return recurrence.CaseAnalysis{
		Kind:        kind,
		Complexity:  complexity,
		Scenario:    scenario,
		Example:     example,
		Explanation: explanation,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
