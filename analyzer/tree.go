package analyzer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/algolens/algolens/analyzer/recurrence"
)

// buildTree materializes the depth-bounded symbolic recursion tree of an
// equation: one representative node per branch type per level, stored in an
// arena addressed by index. Level formulas, the height formula and the total
// cost stay fully symbolic and are not limited by the display cap.
// Irregular and non-recursive equations have no tree.
func buildTree(eq *recurrence.Equation, maxLevels int) *recurrence.Tree {
	switch eq.Shape {
	case recurrence.ShapeDivideConquer:
		return buildDivideTree(eq, maxLevels)
	case recurrence.ShapeLinear:
		return buildLinearTree(eq, maxLevels)
	case recurrence.ShapeMultiTermLinear:
		return buildMultiTermTree(eq, maxLevels)
	default:
		return nil
	}
}

func buildDivideTree(eq *recurrence.Equation, maxLevels int) *recurrence.Tree {
	a := eq.BranchCount()
	b := eq.Divisor()
	total, _ := masterComplexity(a, b, eq.Work)
	if eq.Work.Irregular {
		// keep the level sum aligned with the solver's tree-summation bound
		total = fmt.Sprintf("%s · f(n)", formatPower(math.Log(float64(a))/math.Log(float64(b))))
	}

	tree := &recurrence.Tree{
		HeightFormula: fmt.Sprintf("log_%d(n)", b),
		TotalCost:     total,
		Truncated:     true,
		Derivation: fmt.Sprintf(
			"Σ_{k=0}^{log_%d(n)} %d^k · f(n/%d^k) with f(n) = %s sums to Θ(%s).",
			b, a, b, eq.Work, total),
	}
	for level := 0; level < maxLevels; level++ {
		size := sizeAtDivideLevel(b, level)
		work := workAtSize(eq.Work, size)
		parent := level - 1
		tree.Nodes = append(tree.Nodes, recurrence.TreeNode{
			ID:     level,
			Parent: parent,
			Level:  level,
			Size:   size,
			Work:   work,
		})
		tree.Levels = append(tree.Levels, recurrence.LevelCost{
			Level:     level,
			NodeCount: strconv.Itoa(intPow(a, level)),
			Formula:   divideLevelFormula(a, b, level, eq.Work),
		})
	}
	return tree
}

// divideLevelFormula renders the cost of one whole level, simplified for the
// common balanced case where per-level work collapses to n.
func divideLevelFormula(a, b, level int, w recurrence.Work) string {
	nodes := intPow(a, level)
	size := sizeAtDivideLevel(b, level)
	perNode := workAtSize(w, size)
	formula := fmt.Sprintf("%d × %s", nodes, perNode)
	if w.Degree == 1 && w.LogPower == 0 && !w.Irregular && a == b {
		formula += " = n"
	} else if w.IsConstant() {
		formula += fmt.Sprintf(" = %d·c", nodes)
	}
	return formula
}

func buildLinearTree(eq *recurrence.Equation, maxLevels int) *recurrence.Tree {
	step := 1
	if len(eq.Branches) > 0 && eq.Branches[0].Transform.Amount > 0 {
		step = eq.Branches[0].Transform.Amount
	}
	base := 0
	if len(eq.BaseCases) > 0 {
		base = eq.BaseCases[len(eq.BaseCases)-1].Arg
	}
	closed := recurrence.Work{Degree: eq.Work.Degree + 1, LogPower: eq.Work.LogPower}

	height := fmt.Sprintf("n - %d", base)
	if step > 1 {
		height = fmt.Sprintf("(n - %d)/%d", base, step)
	}
	tree := &recurrence.Tree{
		HeightFormula: height,
		TotalCost:     closed.String(),
		Truncated:     true,
		Derivation: fmt.Sprintf(
			"Degenerate path: Σ_{i=0}^{%s} f(n-%d·i) with f(n) = %s sums to Θ(%s).",
			height, step, eq.Work, closed),
	}
	for level := 0; level < maxLevels; level++ {
		size := sizeAtDecrementLevel(step, level)
		tree.Nodes = append(tree.Nodes, recurrence.TreeNode{
			ID:     level,
			Parent: level - 1,
			Level:  level,
			Size:   size,
			Work:   workAtSize(eq.Work, size),
		})
		tree.Levels = append(tree.Levels, recurrence.LevelCost{
			Level:     level,
			NodeCount: "1",
			Formula:   "1 × " + workAtSize(eq.Work, size),
		})
	}
	return tree
}

func buildMultiTermTree(eq *recurrence.Equation, maxLevels int) *recurrence.Tree {
	m := eq.BranchCount()
	total := strconv.Itoa(m) + "^n"

	tree := &recurrence.Tree{
		HeightFormula: "≈ n",
		TotalCost:     total,
		Truncated:     true,
		Derivation: fmt.Sprintf(
			"Σ_{k=0}^{≈n} %d^k · c sums the geometric branching to Θ(%s).",
			m, total),
	}
	// root
	tree.Nodes = append(tree.Nodes, recurrence.TreeNode{
		ID: 0, Parent: -1, Level: 0, Size: "n", Work: workAtSize(eq.Work, "n"),
	})
	tree.Levels = append(tree.Levels, recurrence.LevelCost{
		Level: 0, NodeCount: "1", Formula: "1 × " + workAtSize(eq.Work, "n"),
	})
	// one representative per branch type per level, attached to the leftmost
	// representative of the previous level
	prevFirst := 0
	for level := 1; level < maxLevels; level++ {
		first := len(tree.Nodes)
		for _, branch := range eq.Branches {
			size := sizeAtDecrementLevel(branch.Transform.Amount, level)
			tree.Nodes = append(tree.Nodes, recurrence.TreeNode{
				ID:     len(tree.Nodes),
				Parent: prevFirst,
				Level:  level,
				Size:   size,
				Work:   workAtSize(eq.Work, size),
			})
		}
		nodes := intPow(m, level)
		tree.Levels = append(tree.Levels, recurrence.LevelCost{
			Level:     level,
			NodeCount: strconv.Itoa(nodes),
			Formula:   fmt.Sprintf("%d × c = %d·c", nodes, nodes),
		})
		prevFirst = first
	}
	return tree
}

func sizeAtDivideLevel(b, level int) string {
	if level == 0 {
		return "n"
	}
	return "n/" + strconv.Itoa(intPow(b, level))
}

func sizeAtDecrementLevel(step, level int) string {
	if level == 0 {
		return "n"
	}
	return "n-" + strconv.Itoa(step*level)
}

// workAtSize renders f evaluated at a symbolic problem size.
func workAtSize(w recurrence.Work, size string) string {
	if w.Irregular {
		return "f(" + size + ")"
	}
	if w.IsConstant() {
		return "c"
	}
	wrapped := size
	if size != "n" {
		wrapped = "(" + size + ")"
	}
	out := ""
	switch {
	case w.Degree == 1:
		out = wrapped
	case w.Degree > 1:
		out = wrapped + "^" + strconv.Itoa(w.Degree)
	}
	switch {
	case w.LogPower == 1:
		if out != "" {
			out += " "
		}
		out += "log " + wrapped
	case w.LogPower > 1:
		if out != "" {
			out += " "
		}
		out += "log^" + strconv.Itoa(w.LogPower) + " " + wrapped
	}
	return out
}

func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
