package analyzer

import (
	"strconv"

	"github.com/algolens/algolens/analyzer/recurrence"
	"github.com/algolens/algolens/ast"
)

// extractCalls finds every self-recursive call in fn's body, in document
// order, and classifies the size transform of each. Calls to other functions
// are ignored; mutual recursion across functions is not detected.
func extractCalls(fn *ast.Function) []recurrence.RecursiveCall {
	var calls []recurrence.RecursiveCall
	paramIdx := primaryParamIndex(fn)
	param := ""
	if paramIdx >= 0 {
		param = fn.Params[paramIdx]
	}
	ast.WalkList(fn.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.Call)
		if !ok || call.Target != fn.Name {
			return true
		}
		var arg ast.Node
		if paramIdx >= 0 && paramIdx < len(call.Args) {
			arg = call.Args[paramIdx]
		}
		calls = append(calls, recurrence.RecursiveCall{
			Argument:  exprText(arg),
			Transform: classifyTransform(arg, param),
		})
		return true
	})
	return calls
}

// primaryParamIndex picks the primary size parameter: the first parameter
// that actually varies across some recursive call argument, defaulting to
// the first parameter.
func primaryParamIndex(fn *ast.Function) int {
	if len(fn.Params) == 0 {
		return -1
	}
	for i, p := range fn.Params {
		varies := false
		ast.WalkList(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.Call)
			if !ok || call.Target != fn.Name || i >= len(call.Args) {
				return true
			}
			if t := classifyTransform(call.Args[i], p); t.Kind != recurrence.Unknown {
				varies = true
			}
			return true
		})
		if varies {
			return i
		}
	}
	return 0
}

// classifyTransform maps a recursive-call argument onto the enumerated size
// transforms: param-k, param/b, or Unknown for everything else.
func classifyTransform(arg ast.Node, param string) recurrence.Transform {
	bin, ok := arg.(*ast.BinOp)
	if !ok {
		return recurrence.Transform{Kind: recurrence.Unknown}
	}
	v, ok := bin.Left.(*ast.Var)
	if !ok || v.Name != param {
		return recurrence.Transform{Kind: recurrence.Unknown}
	}
	num, ok := bin.Right.(*ast.Number)
	if !ok {
		return recurrence.Transform{Kind: recurrence.Unknown}
	}
	switch bin.Op {
	case "-":
		if num.Value >= 1 {
			return recurrence.Transform{Kind: recurrence.Decrement, Amount: num.Value}
		}
	case "/", "//", "div":
		if num.Value >= 2 {
			return recurrence.Transform{Kind: recurrence.Divide, Amount: num.Value}
		}
	}
	return recurrence.Transform{Kind: recurrence.Unknown}
}

// exprText renders an expression for display inside call records and
// explanations. It is best-effort and never fails.
func exprText(n ast.Node) string {
	switch t := n.(type) {
	case nil:
		return "?"
	case *ast.Var:
		return t.Name
	case *ast.Number:
		return strconv.Itoa(t.Value)
	case *ast.Boolean:
		return strconv.FormatBool(t.Value)
	case *ast.BinOp:
		return exprText(t.Left) + t.Op + exprText(t.Right)
	case *ast.BoolOp:
		return exprText(t.Left) + " " + t.Op + " " + exprText(t.Right)
	case *ast.UnaryOp:
		return t.Op + exprText(t.Operand)
	case *ast.Call:
		s := t.Target + "("
		for i, a := range t.Args {
			if i > 0 {
				s += ", "
			}
			s += exprText(a)
		}
		return s + ")"
	case *ast.ArrayAccess:
		return t.Name + "[" + exprText(t.Index) + "]"
	case *ast.MatrixAccess:
		return t.Name + "[" + exprText(t.Row) + "][" + exprText(t.Col) + "]"
	default:
		return t.Kind().String()
	}
}
