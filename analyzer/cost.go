package analyzer

import (
	"github.com/algolens/algolens/analyzer/recurrence"
	"github.com/algolens/algolens/ast"
)

// workEstimate models f(n), the non-recursive work per invocation, from the
// statement structure alone: constant for straight-line code, degree 1 for a
// single bounded loop, degree d for d nested loops. Loop bodies that consist
// only of recursive dispatch still count as loop work, matching the
// conservative estimate the equations are built from.
func workEstimate(fn *ast.Function) recurrence.Work {
	return recurrence.Work{Degree: loopDepth(fn.Body)}
}

type depthItem struct {
	node  ast.Node
	depth int
}

// loopDepth returns the maximum loop nesting depth reachable from nodes,
// using an explicit work-list so call-stack depth stays constant.
func loopDepth(nodes []ast.Node) int {
	stack := make([]depthItem, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, depthItem{nodes[i], 0})
	}
	max := 0
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node == nil {
			continue
		}
		depth := it.depth
		switch it.node.Kind() {
		case ast.KindFor, ast.KindWhile, ast.KindRepeat:
			depth++
			if depth > max {
				max = depth
			}
		case ast.KindProgram, ast.KindFunction, ast.KindIf,
			ast.KindAssignment, ast.KindCall, ast.KindReturn,
			ast.KindBinOp, ast.KindVar, ast.KindNumber,
			ast.KindArrayAccess, ast.KindMatrixAccess, ast.KindBoolean,
			ast.KindUnaryOp, ast.KindBoolOp:
			// no nesting contribution
		}
		for _, child := range it.node.Children() {
			stack = append(stack, depthItem{child, depth})
		}
	}
	return max
}
