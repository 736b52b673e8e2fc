package recurrence

// Notation is the asymptotic notation a bound is stated in.
type Notation string

const (
	// Theta marks a tight bound.
	Theta Notation = "Θ"
	// BigO marks an upper bound only (the shape was not solvable tightly).
	BigO Notation = "O"
	// Omega marks a lower bound.
	Omega Notation = "Ω"
)

// Method names the solving strategy that produced a bound.
type Method string

const (
	// MethodMaster is the Master Theorem for T(n) = aT(n/b) + f(n).
	MethodMaster Method = "master-theorem"
	// MethodSubstitution is telescoping of single-branch decrements.
	MethodSubstitution Method = "substitution"
	// MethodTree is recursion-tree summation.
	MethodTree Method = "recursion-tree"
	// MethodFallback marks an unsupported shape; the bound is not tight.
	MethodFallback Method = "fallback"
	// MethodLoopCount is iterative loop-depth analysis for non-recursive
	// functions.
	MethodLoopCount Method = "loop-count"
)

// Bound is a solved asymptotic complexity with its derivation.
type Bound struct {
	// Complexity is the growth class without notation, e.g. "n log n".
	Complexity string `json:"complexity" yaml:"complexity"`
	Notation   Notation `json:"notation" yaml:"notation"`
	Method     Method   `json:"method" yaml:"method"`
	// Tight is false when only an upper bound could be derived.
	Tight       bool   `json:"tight" yaml:"tight"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

func (b Bound) String() string {
	return string(b.Notation) + "(" + b.Complexity + ")"
}
