package recurrence

// TreeNode is one symbolic node of the recursion tree: a representative of
// all subproblems of its branch type at its level, not one node per unit of
// n. Nodes live in the Tree arena and reference each other by index.
type TreeNode struct {
	// ID is the node's index in the arena.
	ID int `json:"id" yaml:"id"`
	// Parent is the arena index of the parent, -1 for the root.
	Parent int `json:"parent" yaml:"parent"`
	Level  int `json:"level" yaml:"level"`
	// Size is the symbolic problem size, e.g. "n/4", "n-2".
	Size string `json:"size" yaml:"size"`
	// Work is the symbolic per-node work, e.g. "n/4", "c".
	Work string `json:"work" yaml:"work"`
}

// LevelCost summarizes one tree level: how many nodes it holds and what the
// whole level costs, both as symbolic formulas independent of concrete n.
type LevelCost struct {
	Level     int    `json:"level" yaml:"level"`
	NodeCount string `json:"nodeCount" yaml:"nodeCount"`
	Formula   string `json:"formula" yaml:"formula"`
}

// Tree is the depth-bounded symbolic recursion tree. Display nodes are
// truncated at the configured level cap; Levels, HeightFormula and
// TotalCost are derived symbolically and are not limited by the truncation.
type Tree struct {
	Nodes []TreeNode `json:"nodes" yaml:"nodes"`
	// Levels holds the per-level cost formulas from the root down.
	Levels []LevelCost `json:"levels" yaml:"levels"`
	// HeightFormula is the symbolic tree height, e.g. "log_2(n)".
	HeightFormula string `json:"heightFormula" yaml:"heightFormula"`
	// TotalCost is the Θ-class obtained by summing all levels.
	TotalCost string `json:"totalCost" yaml:"totalCost"`
	// Derivation explains the level summation in prose.
	Derivation string `json:"derivation" yaml:"derivation"`
	// Truncated is set when the display arena stops before the symbolic
	// height.
	Truncated bool `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *TreeNode {
	if len(t.Nodes) == 0 {
		return nil
	}
	return &t.Nodes[0]
}

// ChildrenOf returns the arena indices of id's children in id order.
func (t *Tree) ChildrenOf(id int) []int {
	var out []int
	for i := range t.Nodes {
		if t.Nodes[i].Parent == id {
			out = append(out, i)
		}
	}
	return out
}

// Depth returns the number of materialized levels.
func (t *Tree) Depth() int {
	return len(t.Levels)
}
