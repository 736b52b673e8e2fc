package ast

// Kind enumerates the closed node vocabulary. Every consumer dispatches on
// Kind with an exhaustive switch so that adding a kind breaks compilation at
// each dispatch site rather than silently falling through.
type Kind int

const (
	KindProgram Kind = iota
	KindFunction
	KindIf
	KindFor
	KindWhile
	KindRepeat
	KindAssignment
	KindCall
	KindReturn
	KindBinOp
	KindVar
	KindNumber
	KindArrayAccess
	KindMatrixAccess
	KindBoolean
	KindUnaryOp
	KindBoolOp
)

var kindNames = [...]string{
	KindProgram:      "Program",
	KindFunction:     "Function",
	KindIf:           "If",
	KindFor:          "For",
	KindWhile:        "While",
	KindRepeat:       "Repeat",
	KindAssignment:   "Assignment",
	KindCall:         "Call",
	KindReturn:       "Return",
	KindBinOp:        "BinOp",
	KindVar:          "Var",
	KindNumber:       "Number",
	KindArrayAccess:  "ArrayAccess",
	KindMatrixAccess: "MatrixAccess",
	KindBoolean:      "Boolean",
	KindUnaryOp:      "UnaryOp",
	KindBoolOp:       "BoolOp",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}
