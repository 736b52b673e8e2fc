package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/algolens/algolens/analyzer/recurrence"
	"github.com/algolens/algolens/ast"
)

// buildEquation aggregates extracted calls and the structural work estimate
// into the canonical recurrence equation. The result depends only on the
// AST: equal inputs yield byte-equal Text.
func buildEquation(fn *ast.Function, calls []recurrence.RecursiveCall) *recurrence.Equation {
	work := workEstimate(fn)

	if len(calls) == 0 {
		depth := loopDepth(fn.Body)
		return &recurrence.Equation{
			Shape:     recurrence.ShapeNone,
			Work:      work,
			LoopDepth: depth,
			BaseCases: []recurrence.BaseCase{{Arg: 0, Cost: "c"}},
			Text:      iterativeText(depth),
		}
	}

	branches := groupBranches(calls)
	eq := &recurrence.Equation{
		Shape:    classifyShape(branches),
		Branches: branches,
		Work:     work,
	}
	eq.BaseCases, eq.BaseAssumed = scanBaseCases(fn)
	eq.Text = equationText(branches, work)
	return eq
}

// groupBranches merges calls with identical transforms, preserving the
// document order of first occurrence.
func groupBranches(calls []recurrence.RecursiveCall) []recurrence.Branch {
	var branches []recurrence.Branch
	index := map[recurrence.Transform]int{}
	for _, c := range calls {
		if i, ok := index[c.Transform]; ok {
			branches[i].Count++
			continue
		}
		index[c.Transform] = len(branches)
		branches = append(branches, recurrence.Branch{Transform: c.Transform, Count: 1})
	}
	return branches
}

func classifyShape(branches []recurrence.Branch) recurrence.Shape {
	decrements, divides, unknown := 0, 0, 0
	divisors := map[int]bool{}
	total := 0
	for _, b := range branches {
		total += b.Count
		switch b.Transform.Kind {
		case recurrence.Decrement:
			decrements += b.Count
		case recurrence.Divide:
			divides += b.Count
			divisors[b.Transform.Amount] = true
		case recurrence.Unknown:
			unknown += b.Count
		}
	}
	switch {
	case unknown > 0, decrements > 0 && divides > 0:
		return recurrence.ShapeIrregular
	case divides > 0 && len(divisors) > 1:
		return recurrence.ShapeIrregular
	case divides > 0:
		return recurrence.ShapeDivideConquer
	case total == 1:
		return recurrence.ShapeLinear
	default:
		return recurrence.ShapeMultiTermLinear
	}
}

func equationText(branches []recurrence.Branch, work recurrence.Work) string {
	terms := make([]string, 0, len(branches)+1)
	for _, b := range branches {
		term := "T(" + b.Transform.Term() + ")"
		if b.Count > 1 {
			term = strconv.Itoa(b.Count) + term
		}
		terms = append(terms, term)
	}
	terms = append(terms, work.String())
	return "T(n) = " + strings.Join(terms, " + ")
}

func iterativeText(depth int) string {
	switch depth {
	case 0:
		return "T(n) = c"
	case 1:
		return "T(n) = cn"
	default:
		return fmt.Sprintf("T(n) = cn^%d", depth)
	}
}

// scanBaseCases reads base cases from guard branches under which no
// recursive call occurs: If conditions comparing the size parameter to a
// literal, whose taken branch returns without recursing. When nothing
// matches, the default T(0)=T(1)=c assumption applies and is flagged.
func scanBaseCases(fn *ast.Function) ([]recurrence.BaseCase, bool) {
	param := ""
	if i := primaryParamIndex(fn); i >= 0 {
		param = fn.Params[i]
	}
	args := map[int]bool{}
	ast.WalkList(fn.Body, func(n ast.Node) bool {
		cond, ok := n.(*ast.If)
		if !ok {
			return true
		}
		if branchTerminates(fn.Name, cond.Then) {
			collectGuardArgs(cond.Cond, param, args)
		}
		if cond.Else != nil && branchTerminates(fn.Name, cond.Else) {
			collectGuardArgs(negatedGuard(cond.Cond), param, args)
		}
		return true
	})
	if len(args) == 0 {
		return []recurrence.BaseCase{{Arg: 0, Cost: "c"}, {Arg: 1, Cost: "c"}}, true
	}
	sorted := make([]int, 0, len(args))
	for k := range args {
		sorted = append(sorted, k)
	}
	sort.Ints(sorted)
	cases := make([]recurrence.BaseCase, 0, len(sorted))
	for _, k := range sorted {
		cases = append(cases, recurrence.BaseCase{Arg: k, Cost: "c"})
	}
	return cases, false
}

// branchTerminates reports whether stmts return without any self-call.
func branchTerminates(fnName string, stmts []ast.Node) bool {
	hasReturn, hasRecursion := false, false
	ast.WalkList(stmts, func(n ast.Node) bool {
		switch t := n.(type) {
		case *ast.Return:
			hasReturn = true
		case *ast.Call:
			if t.Target == fnName {
				hasRecursion = true
			}
		}
		return true
	})
	return hasReturn && !hasRecursion
}

// collectGuardArgs enumerates the size values accepted by a base-case guard
// like n == 0, n <= 1 or n < 2. Disjunctions contribute both sides. Ranges
// wider than a few values keep only the boundary, which is all the equation
// display needs.
func collectGuardArgs(cond ast.Node, param string, out map[int]bool) {
	switch t := cond.(type) {
	case *ast.BoolOp:
		if t.Op == "or" {
			collectGuardArgs(t.Left, param, out)
			collectGuardArgs(t.Right, param, out)
		}
	case *ast.BinOp:
		v, ok := t.Left.(*ast.Var)
		if !ok || v.Name != param {
			return
		}
		num, ok := t.Right.(*ast.Number)
		if !ok {
			return
		}
		switch t.Op {
		case "==", "=":
			out[num.Value] = true
		case "<=":
			enumerateUpTo(num.Value, out)
		case "<":
			enumerateUpTo(num.Value-1, out)
		}
	}
}

func enumerateUpTo(k int, out map[int]bool) {
	if k < 0 {
		return
	}
	if k > 3 {
		out[k] = true
		return
	}
	for i := 0; i <= k; i++ {
		out[i] = true
	}
}

// negatedGuard handles else-branch base cases for guards of the form
// param > k / param >= k, whose negation re-enters the enumerable range.
func negatedGuard(cond ast.Node) ast.Node {
	bin, ok := cond.(*ast.BinOp)
	if !ok {
		return nil
	}
	switch bin.Op {
	case ">":
		return &ast.BinOp{Left: bin.Left, Op: "<=", Right: bin.Right}
	case ">=":
		return &ast.BinOp{Left: bin.Left, Op: "<", Right: bin.Right}
	}
	return nil
}
