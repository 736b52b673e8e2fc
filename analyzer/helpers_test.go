package analyzer

import (
	"github.com/algolens/algolens/ast"
)

func nVar() *ast.Var { return &ast.Var{Name: "n"} }

func nMinus(k int) ast.Node {
	return &ast.BinOp{Left: nVar(), Op: "-", Right: &ast.Number{Value: k}}
}

func nDiv(b int) ast.Node {
	return &ast.BinOp{Left: nVar(), Op: "/", Right: &ast.Number{Value: b}}
}

func baseGuard(limit int, ret ast.Node) *ast.If {
	return &ast.If{
		Cond: &ast.BinOp{Left: nVar(), Op: "<=", Right: &ast.Number{Value: limit}},
		Then: []ast.Node{&ast.Return{Expr: ret}},
	}
}

// factorial(n): if n <= 1 { return 1 }; return n * factorial(n-1)
func factorialAST() *ast.Function {
	return &ast.Function{
		Name:   "factorial",
		Params: []string{"n"},
		Body: []ast.Node{
			baseGuard(1, &ast.Number{Value: 1}),
			&ast.Return{Expr: &ast.BinOp{
				Left:  nVar(),
				Op:    "*",
				Right: &ast.Call{Target: "factorial", Args: []ast.Node{nMinus(1)}},
			}},
		},
	}
}

// fibonacci(n): if n <= 1 { return n }; return fibonacci(n-1) + fibonacci(n-2)
func fibonacciAST() *ast.Function {
	return &ast.Function{
		Name:   "fibonacci",
		Params: []string{"n"},
		Body: []ast.Node{
			baseGuard(1, nVar()),
			&ast.Return{Expr: &ast.BinOp{
				Left:  &ast.Call{Target: "fibonacci", Args: []ast.Node{nMinus(1)}},
				Op:    "+",
				Right: &ast.Call{Target: "fibonacci", Args: []ast.Node{nMinus(2)}},
			}},
		},
	}
}

// mergeSort(n): if n <= 1 { return 1 }; left = mergeSort(n/2);
// right = mergeSort(n/2); for i = 1..n { out = merge step }; return left
func mergeSortAST() *ast.Function {
	return &ast.Function{
		Name:   "mergeSort",
		Params: []string{"n"},
		Body: []ast.Node{
			baseGuard(1, &ast.Number{Value: 1}),
			&ast.Assignment{Name: "left", Expr: &ast.Call{Target: "mergeSort", Args: []ast.Node{nDiv(2)}}},
			&ast.Assignment{Name: "right", Expr: &ast.Call{Target: "mergeSort", Args: []ast.Node{nDiv(2)}}},
			&ast.For{
				Var:   "i",
				Start: &ast.Number{Value: 1},
				End:   nVar(),
				Body: []ast.Node{
					&ast.Assignment{Name: "out", Expr: &ast.ArrayAccess{Name: "a", Index: &ast.Var{Name: "i"}}},
				},
			},
			&ast.Return{Expr: &ast.Var{Name: "left"}},
		},
	}
}

// halving(n): if n <= 1 { return 1 }; return halving(n/2)
func halvingAST() *ast.Function {
	return &ast.Function{
		Name:   "halving",
		Params: []string{"n"},
		Body: []ast.Node{
			baseGuard(1, &ast.Number{Value: 1}),
			&ast.Return{Expr: &ast.Call{Target: "halving", Args: []ast.Node{nDiv(2)}}},
		},
	}
}

// mixed(n): if n <= 1 { return 1 }; return mixed(n-2) + mixed(n/2)
func mixedAST() *ast.Function {
	return &ast.Function{
		Name:   "mixed",
		Params: []string{"n"},
		Body: []ast.Node{
			baseGuard(1, &ast.Number{Value: 1}),
			&ast.Return{Expr: &ast.BinOp{
				Left:  &ast.Call{Target: "mixed", Args: []ast.Node{nMinus(2)}},
				Op:    "+",
				Right: &ast.Call{Target: "mixed", Args: []ast.Node{nDiv(2)}},
			}},
		},
	}
}

// sumLoop(n): acc = 0; for i = 1..n { acc = acc + i }; return acc
func sumLoopAST() *ast.Function {
	return &ast.Function{
		Name:   "sumLoop",
		Params: []string{"n"},
		Body: []ast.Node{
			&ast.Assignment{Name: "acc", Expr: &ast.Number{Value: 0}},
			&ast.For{
				Var:   "i",
				Start: &ast.Number{Value: 1},
				End:   nVar(),
				Body: []ast.Node{
					&ast.Assignment{Name: "acc", Expr: &ast.BinOp{Left: &ast.Var{Name: "acc"}, Op: "+", Right: &ast.Var{Name: "i"}}},
				},
			},
			&ast.Return{Expr: &ast.Var{Name: "acc"}},
		},
	}
}

// bubble(n): for i = 1..n { for j = 1..n { t = a[j] } }
func bubbleAST() *ast.Function {
	return &ast.Function{
		Name:   "bubble",
		Params: []string{"n"},
		Body: []ast.Node{
			&ast.For{
				Var:   "i",
				Start: &ast.Number{Value: 1},
				End:   nVar(),
				Body: []ast.Node{
					&ast.For{
						Var:   "j",
						Start: &ast.Number{Value: 1},
						End:   nVar(),
						Body: []ast.Node{
							&ast.Assignment{Name: "t", Expr: &ast.ArrayAccess{Name: "a", Index: &ast.Var{Name: "j"}}},
						},
					},
				},
			},
		},
	}
}

// searchHalf(a, n): if n <= 1 { return 1 }; return searchHalf(a, n/2)
// exercises size-parameter detection beyond the first position.
func searchHalfAST() *ast.Function {
	return &ast.Function{
		Name:   "searchHalf",
		Params: []string{"a", "n"},
		Body: []ast.Node{
			baseGuard(1, &ast.Number{Value: 1}),
			&ast.Return{Expr: &ast.Call{
				Target: "searchHalf",
				Args:   []ast.Node{&ast.Var{Name: "a"}, nDiv(2)},
			}},
		},
	}
}
