// Package analyzer computes the asymptotic time complexity of pseudocode
// functions given as syntax trees. The pipeline extracts self-recursive
// calls, builds a canonical recurrence equation, solves it with a method
// selected from the equation's shape (Master Theorem, substitution,
// recursion-tree summation), materializes a depth-bounded symbolic recursion
// tree, and derives best/worst/average-case narratives. All four artifacts
// trace to one classification decision. Unsupported shapes degrade to a
// non-tight upper bound instead of guessing.
package analyzer

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/algolens/algolens/ast"
)

// Analyzer runs the analysis pipeline. It is safe for concurrent use; the
// memo cache is the only shared mutable state and is internally
// synchronized.
type Analyzer struct {
	config Config
	logger *slog.Logger
	cache  *memoCache
}

// New builds an Analyzer from the default configuration and the given
// options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		config: DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:  newMemoCache(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline for one function, or returns the memoized
// bundle when an identically-shaped function was analyzed before. Only
// ElapsedTimeMs differs between cold and warm paths.
func (a *Analyzer) Analyze(fn *ast.Function) (*Result, error) {
	start := time.Now()
	if err := a.validate(fn); err != nil {
		return nil, err
	}

	if !a.config.CacheEnabled {
		res, err := a.runPipeline(fn)
		if err != nil {
			return nil, err
		}
		return stamped(res, start), nil
	}

	key, err := ast.Fingerprint(fn)
	if err != nil {
		return nil, fmt.Errorf("analyzer: fingerprint %s: %w", fn.Name, err)
	}
	res, err := a.cache.do(key, func() (*Result, error) {
		return a.runPipeline(fn)
	})
	if err != nil {
		return nil, err
	}
	return stamped(res, start), nil
}

// AnalyzeProgram analyzes every function of a program. A malformed function
// yields a per-function error entry and never aborts the rest of the batch.
func (a *Analyzer) AnalyzeProgram(prog *ast.Program) []*Result {
	if prog == nil {
		return nil
	}
	results := make([]*Result, 0, len(prog.Functions))
	for _, fn := range prog.Functions {
		res, err := a.Analyze(fn)
		if err != nil {
			name := ""
			if fn != nil {
				name = fn.Name
			}
			a.logger.Warn("function analysis failed",
				slog.String("function", name),
				slog.String("error", err.Error()))
			results = append(results, &Result{Function: name, Error: err.Error()})
			continue
		}
		results = append(results, res)
	}
	return results
}

// ResetCache drops every memoized bundle; intended for test isolation.
func (a *Analyzer) ResetCache() {
	a.cache.Reset()
}

// CacheStats reports hit/miss counters and the entry count.
func (a *Analyzer) CacheStats() CacheStats {
	return a.cache.stats()
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	return a.config
}

func (a *Analyzer) validate(fn *ast.Function) error {
	if fn == nil {
		return ErrNilFunction
	}
	if len(fn.Body) == 0 {
		return fmt.Errorf("%s: %w", fn.Name, ErrMissingBody)
	}
	if size := ast.Count(fn); size > a.config.MaxASTNodes {
		return fmt.Errorf("%s: %d nodes: %w", fn.Name, size, ErrASTTooLarge)
	}
	return nil
}

// runPipeline executes extraction, equation building, solving, tree
// construction and case derivation for one function. Synchronous and free
// of I/O; every artifact derives from the one equation built here.
func (a *Analyzer) runPipeline(fn *ast.Function) (*Result, error) {
	calls := extractCalls(fn)
	eq := buildEquation(fn, calls)
	bound := solveEquation(eq)
	tree := buildTree(eq, a.config.MaxTreeLevels)
	cases := buildCases(fn.Name, eq, bound)

	a.logger.Debug("pipeline complete",
		slog.String("function", fn.Name),
		slog.String("shape", string(eq.Shape)),
		slog.String("equation", eq.Text),
		slog.String("bound", bound.String()),
		slog.String("category", string(cases.Category)),
		slog.Int("recursiveCalls", len(calls)))

	return &Result{
		Function:    fn.Name,
		IsRecursive: len(calls) > 0,
		Calls:       calls,
		Equation:    eq,
		Bound:       bound,
		Tree:        tree,
		Cases:       cases,
	}, nil
}

// stamped copies the bundle with the caller's own elapsed time so cached
// followers do not share the leader's measurement.
func stamped(res *Result, start time.Time) *Result {
	out := *res
	out.ElapsedTimeMs = float64(time.Since(start).Nanoseconds()) / 1e6
	return &out
}
