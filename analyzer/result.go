package analyzer

import (
	"fmt"
	"strings"

	"github.com/algolens/algolens/analyzer/recurrence"
)

// Result is the serializable analysis bundle for one function. Every field
// except ElapsedTimeMs is deterministic in the input AST; cold and warm
// cache paths return identical bundles up to the elapsed time.
type Result struct {
	Function    string `json:"function" yaml:"function"`
	IsRecursive bool   `json:"isRecursive" yaml:"isRecursive"`

	Calls    []recurrence.RecursiveCall `json:"recursiveCalls,omitempty" yaml:"recursiveCalls,omitempty"`
	Equation *recurrence.Equation       `json:"recurrenceEquation" yaml:"recurrenceEquation"`
	Bound    recurrence.Bound           `json:"asymptoticBound" yaml:"asymptoticBound"`
	// Tree is nil for non-recursive functions and unsupported shapes.
	Tree  *recurrence.Tree    `json:"recurrenceTree,omitempty" yaml:"recurrenceTree,omitempty"`
	Cases recurrence.CaseSet  `json:"caseAnalyses" yaml:"caseAnalyses"`

	// Error carries the per-function failure in batch mode; all analysis
	// fields are zero when it is set.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	ElapsedTimeMs float64 `json:"elapsedTimeMs" yaml:"elapsedTimeMs"`
}

// Summary renders the bundle as plain text for reporting layers that do not
// consume the structured form.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s\n", r.Function)
	if r.Error != "" {
		fmt.Fprintf(&b, "  error: %s\n", r.Error)
		return b.String()
	}
	fmt.Fprintf(&b, "  equation: %s\n", r.Equation.Text)
	if bases := r.Equation.BaseCaseText(); bases != "" {
		fmt.Fprintf(&b, "  base cases: %s\n", bases)
	}
	fmt.Fprintf(&b, "  bound: %s  [%s]\n", r.Bound, r.Bound.Method)
	fmt.Fprintf(&b, "  %s\n", r.Bound.Explanation)
	if r.Tree != nil {
		fmt.Fprintf(&b, "  tree height: %s, total: %s(%s)\n", r.Tree.HeightFormula, r.Bound.Notation, r.Tree.TotalCost)
		for _, lvl := range r.Tree.Levels {
			fmt.Fprintf(&b, "    level %d: %s nodes, %s\n", lvl.Level, lvl.NodeCount, lvl.Formula)
		}
	}
	fmt.Fprintf(&b, "  category: %s\n", r.Cases.Category)
	fmt.Fprintf(&b, "  best:    %s — %s\n", r.Cases.Best.Complexity, r.Cases.Best.Scenario)
	fmt.Fprintf(&b, "  worst:   %s — %s\n", r.Cases.Worst.Complexity, r.Cases.Worst.Scenario)
	fmt.Fprintf(&b, "  average: %s — %s\n", r.Cases.Average.Complexity, r.Cases.Average.Scenario)
	return b.String()
}
