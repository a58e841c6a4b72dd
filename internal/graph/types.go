package graph

// Task is a node in the task graph: a unique code, an integer duration,
// and resolved dependency edges.
type Task struct {
	Code     string
	Duration int
	PredText string // original predecessor field, trimmed, for display
	Preds    []int  // predecessor indices, reference order, deduplicated
	Succs    []int  // successor indices, derived from Preds
}

// TaskGraph is the indexed dependency graph. Tasks preserves the original
// input order; that order is semantic, since scheduling tie-breaks fall
// back to it.
type TaskGraph struct {
	Tasks  []*Task
	byCode map[string]int
}

// TaskCount returns the number of tasks in the graph.
func (g *TaskGraph) TaskCount() int {
	return len(g.Tasks)
}

// Index returns the task index for a code.
func (g *TaskGraph) Index(code string) (int, bool) {
	i, ok := g.byCode[code]
	return i, ok
}

// EdgeCount returns the number of dependency edges.
func (g *TaskGraph) EdgeCount() int {
	n := 0
	for _, t := range g.Tasks {
		n += len(t.Preds)
	}
	return n
}

// Roots returns the codes of tasks with no predecessors, in input order.
func (g *TaskGraph) Roots() []string {
	var roots []string
	for _, t := range g.Tasks {
		if len(t.Preds) == 0 {
			roots = append(roots, t.Code)
		}
	}
	return roots
}

// Terminals returns the codes of tasks with no successors, in input order.
func (g *TaskGraph) Terminals() []string {
	var terms []string
	for _, t := range g.Tasks {
		if len(t.Succs) == 0 {
			terms = append(terms, t.Code)
		}
	}
	return terms
}
