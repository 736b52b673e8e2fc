// Package ast defines the syntax-tree input contract for the complexity
// analyzer: a closed vocabulary of pseudocode node kinds, a generic
// children accessor sufficient to locate any node in a body, an iterative
// walker, and a structural fingerprint used as the memoization key.
//
// The package owns no parsing; trees are built programmatically by the host
// (a grammar front end, a test, a translation layer).
package ast

// Node is the common interface of every syntax-tree node. Children returns
// direct children in document order; leaves return nil.
type Node interface {
	Kind() Kind
	Children() []Node
}

// Program groups the functions of one analyzed source unit.
type Program struct {
	Functions []*Function
}

// Function is one analyzed function: name, parameter names and a statement
// body. The first parameter is treated as the primary size parameter.
type Function struct {
	Name   string
	Params []string
	Body   []Node
}

// If is a conditional with an optional else branch.
type If struct {
	Cond Node
	Then []Node
	Else []Node
}

// For is a bounded counting loop over [Start, End].
type For struct {
	Var   string
	Start Node
	End   Node
	Body  []Node
}

// While is a condition-guarded loop.
type While struct {
	Cond Node
	Body []Node
}

// Repeat is a post-condition loop (body runs at least once).
type Repeat struct {
	Body []Node
	Cond Node
}

// Assignment binds an expression to a name.
type Assignment struct {
	Name string
	Expr Node
}

// Call invokes Target with argument expressions.
type Call struct {
	Target string
	Args   []Node
}

// Return yields an optional expression.
type Return struct {
	Expr Node
}

// BinOp is an arithmetic or relational binary expression.
type BinOp struct {
	Left  Node
	Op    string
	Right Node
}

// Var references a name.
type Var struct {
	Name string
}

// Number is an integer literal.
type Number struct {
	Value int
}

// ArrayAccess indexes a one-dimensional array.
type ArrayAccess struct {
	Name  string
	Index Node
}

// MatrixAccess indexes a two-dimensional array.
type MatrixAccess struct {
	Name string
	Row  Node
	Col  Node
}

// Boolean is a boolean literal.
type Boolean struct {
	Value bool
}

// UnaryOp applies Op (e.g. "not", "-") to a single operand.
type UnaryOp struct {
	Op      string
	Operand Node
}

// BoolOp combines two boolean expressions with "and"/"or".
type BoolOp struct {
	Left  Node
	Op    string
	Right Node
}

func (*Program) Kind() Kind      { return KindProgram }
func (*Function) Kind() Kind     { return KindFunction }
func (*If) Kind() Kind           { return KindIf }
func (*For) Kind() Kind          { return KindFor }
func (*While) Kind() Kind        { return KindWhile }
func (*Repeat) Kind() Kind       { return KindRepeat }
func (*Assignment) Kind() Kind   { return KindAssignment }
func (*Call) Kind() Kind         { return KindCall }
func (*Return) Kind() Kind       { return KindReturn }
func (*BinOp) Kind() Kind        { return KindBinOp }
func (*Var) Kind() Kind          { return KindVar }
func (*Number) Kind() Kind       { return KindNumber }
func (*ArrayAccess) Kind() Kind  { return KindArrayAccess }
func (*MatrixAccess) Kind() Kind { return KindMatrixAccess }
func (*Boolean) Kind() Kind      { return KindBoolean }
func (*UnaryOp) Kind() Kind      { return KindUnaryOp }
func (*BoolOp) Kind() Kind       { return KindBoolOp }

func (n *Program) Children() []Node {
	out := make([]Node, 0, len(n.Functions))
	for _, fn := range n.Functions {
		out = append(out, fn)
	}
	return out
}

func (n *Function) Children() []Node { return n.Body }

func (n *If) Children() []Node {
	out := make([]Node, 0, 1+len(n.Then)+len(n.Else))
	out = append(out, n.Cond)
	out = append(out, n.Then...)
	out = append(out, n.Else...)
	return out
}

func (n *For) Children() []Node {
	out := make([]Node, 0, 2+len(n.Body))
	out = append(out, n.Start, n.End)
	out = append(out, n.Body...)
	return out
}

func (n *While) Children() []Node {
	out := make([]Node, 0, 1+len(n.Body))
	out = append(out, n.Cond)
	out = append(out, n.Body...)
	return out
}

func (n *Repeat) Children() []Node {
	out := make([]Node, 0, 1+len(n.Body))
	out = append(out, n.Body...)
	out = append(out, n.Cond)
	return out
}

func (n *Assignment) Children() []Node {
	if n.Expr == nil {
		return nil
	}
	return []Node{n.Expr}
}

func (n *Call) Children() []Node { return n.Args }

func (n *Return) Children() []Node {
	if n.Expr == nil {
		return nil
	}
	return []Node{n.Expr}
}

func (n *BinOp) Children() []Node  { return []Node{n.Left, n.Right} }
func (n *Var) Children() []Node    { return nil }
func (n *Number) Children() []Node { return nil }

func (n *ArrayAccess) Children() []Node {
	if n.Index == nil {
		return nil
	}
	return []Node{n.Index}
}

func (n *MatrixAccess) Children() []Node { return []Node{n.Row, n.Col} }
func (n *Boolean) Children() []Node      { return nil }

func (n *UnaryOp) Children() []Node {
	if n.Operand == nil {
		return nil
	}
	return []Node{n.Operand}
}

func (n *BoolOp) Children() []Node { return []Node{n.Left, n.Right} }
