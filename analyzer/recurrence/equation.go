package recurrence

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape classifies the aggregate branch pattern of an equation.
type Shape string

const (
	// ShapeNone marks a function with no self-recursion.
	ShapeNone Shape = "none"
	// ShapeLinear is a single decrement branch: T(n) = T(n-k) + f(n).
	ShapeLinear Shape = "linear"
	// ShapeMultiTermLinear is two or more decrement branches
	// (Fibonacci-shaped in the two-term case).
	ShapeMultiTermLinear Shape = "multi-term-linear"
	// ShapeDivideConquer is a divide calls sharing one divisor:
	// T(n) = aT(n/b) + f(n).
	ShapeDivideConquer Shape = "divide-conquer"
	// ShapeIrregular is any mix of transforms the solver does not support.
	ShapeIrregular Shape = "irregular"
)

// Branch is one recursive term with its multiplicity.
type Branch struct {
	Transform Transform `json:"transform" yaml:"transform"`
	Count     int       `json:"count" yaml:"count"`
}

// Work is the non-recursive cost per invocation, modeled as the
// polynomial-log term n^Degree · log^LogPower n. Irregular marks a cost the
// model could not reduce to that form.
type Work struct {
	Degree    int  `json:"degree" yaml:"degree"`
	LogPower  int  `json:"logPower,omitempty" yaml:"logPower,omitempty"`
	Irregular bool `json:"irregular,omitempty" yaml:"irregular,omitempty"`
}

// String renders the term the way the canonical equation writes it: "c" for
// constant work, otherwise "n", "n^2", "n log n", ...
func (w Work) String() string {
	if w.Irregular {
		return "f(n)"
	}
	var parts []string
	switch {
	case w.Degree == 1:
		parts = append(parts, "n")
	case w.Degree > 1:
		parts = append(parts, "n^"+strconv.Itoa(w.Degree))
	}
	switch {
	case w.LogPower == 1:
		parts = append(parts, "log n")
	case w.LogPower > 1:
		parts = append(parts, "log^"+strconv.Itoa(w.LogPower)+" n")
	}
	if len(parts) == 0 {
		return "c"
	}
	return strings.Join(parts, " ")
}

// IsConstant reports whether the work term is Θ(1).
func (w Work) IsConstant() bool {
	return !w.Irregular && w.Degree == 0 && w.LogPower == 0
}

// BaseCase is one terminating definition, e.g. T(0) = c.
type BaseCase struct {
	Arg  int    `json:"arg" yaml:"arg"`
	Cost string `json:"cost" yaml:"cost"`
}

func (b BaseCase) String() string {
	return fmt.Sprintf("T(%d) = %s", b.Arg, b.Cost)
}

// Equation is the canonical recurrence relation for one function. It is
// immutable once built; equal ASTs always produce byte-equal Text.
type Equation struct {
	Shape    Shape  `json:"shape" yaml:"shape"`
	Branches []Branch `json:"branches,omitempty" yaml:"branches,omitempty"`
	Work     Work   `json:"work" yaml:"work"`
	// BaseCases are ordered by argument value.
	BaseCases []BaseCase `json:"baseCases,omitempty" yaml:"baseCases,omitempty"`
	// BaseAssumed is set when no base case was found in the AST and the
	// default T(0)=T(1)=c assumption applies.
	BaseAssumed bool `json:"baseAssumed,omitempty" yaml:"baseAssumed,omitempty"`
	// Text is the canonical rendering, e.g. "T(n) = 2T(n/2) + n".
	Text string `json:"text" yaml:"text"`
	// LoopDepth is the maximum loop nesting for non-recursive functions.
	LoopDepth int `json:"loopDepth,omitempty" yaml:"loopDepth,omitempty"`
}

// BranchCount is the total number of recursive terms, multiplicities
// included.
func (e *Equation) BranchCount() int {
	total := 0
	for _, b := range e.Branches {
		total += b.Count
	}
	return total
}

// Divisor returns b for divide-conquer equations and zero otherwise.
func (e *Equation) Divisor() int {
	if e.Shape != ShapeDivideConquer || len(e.Branches) == 0 {
		return 0
	}
	return e.Branches[0].Transform.Amount
}

// BaseCaseText renders the base cases as a single display string.
func (e *Equation) BaseCaseText() string {
	if len(e.BaseCases) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.BaseCases))
	for _, b := range e.BaseCases {
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}
