// Package recurrence holds the data model produced by the analysis pipeline:
// recursive-call transforms, recurrence equations, asymptotic bounds, the
// symbolic recursion tree and the best/worst/average case analyses. Types are
// plain serializable structs; all derivation logic lives in package analyzer.
package recurrence

import (
	"fmt"
	"strconv"
)

// TransformKind classifies how one recursive call changes the size argument.
type TransformKind string

const (
	// Decrement covers arguments of the form param - k.
	Decrement TransformKind = "decrement"
	// Divide covers arguments of the form param / b with integer b.
	Divide TransformKind = "divide"
	// Unknown covers any argument shape outside the enumerated forms.
	Unknown TransformKind = "unknown"
)

// Transform is one classified size transform. Amount is k for Decrement and
// b for Divide; it is zero for Unknown.
type Transform struct {
	Kind   TransformKind `json:"kind" yaml:"kind"`
	Amount int           `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// Term renders the transform as the argument of a T(·) term.
func (t Transform) Term() string {
	switch t.Kind {
	case Decrement:
		return "n-" + strconv.Itoa(t.Amount)
	case Divide:
		return "n/" + strconv.Itoa(t.Amount)
	default:
		return "?"
	}
}

// RecursiveCall records one self-call site in document order.
type RecursiveCall struct {
	// Argument is the display form of the size argument, e.g. "n-1".
	Argument  string    `json:"argument" yaml:"argument"`
	Transform Transform `json:"transform" yaml:"transform"`
}

func (c RecursiveCall) String() string {
	return fmt.Sprintf("T(%s)", c.Argument)
}
