package recurrence

// Category is the single algorithm-category decision every narrative traces
// to. It is a pure function of (equation shape, bound); the function's name
// never participates in classification.
type Category string

const (
	// CategoryLogarithmicSearch: log-factor bound without an n· term.
	CategoryLogarithmicSearch Category = "logarithmic-search"
	// CategoryDoubleRecursive: two decrement branches (Fibonacci-shaped).
	CategoryDoubleRecursive Category = "double-recursive"
	// CategoryBalancedDivideConquer: divide-conquer with an n log n bound.
	CategoryBalancedDivideConquer Category = "balanced-divide-conquer"
	// CategoryPruneSearch: divide-conquer keeping a single branch.
	CategoryPruneSearch Category = "prune-search"
	// CategoryLinearRecursive: single decrement branch.
	CategoryLinearRecursive Category = "linear-recursive"
	// CategoryGeneric: everything else, including iterative functions.
	CategoryGeneric Category = "generic"
)

// CaseKind distinguishes the three analyzed scenarios.
type CaseKind string

const (
	BestCase    CaseKind = "best"
	WorstCase   CaseKind = "worst"
	AverageCase CaseKind = "average"
)

// CaseAnalysis describes one execution scenario of the analyzed function.
type CaseAnalysis struct {
	Kind       CaseKind `json:"kind" yaml:"kind"`
	Complexity string   `json:"complexity" yaml:"complexity"`
	// Scenario describes when the case occurs.
	Scenario string `json:"scenario" yaml:"scenario"`
	// Example instantiates the scenario with the real function name.
	Example     string `json:"example" yaml:"example"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// CaseSet bundles the three scenarios with the category they derive from.
type CaseSet struct {
	Category Category     `json:"category" yaml:"category"`
	Best     CaseAnalysis `json:"best" yaml:"best"`
	Worst    CaseAnalysis `json:"worst" yaml:"worst"`
	Average  CaseAnalysis `json:"average" yaml:"average"`
}
