// Package graph builds the indexed task dependency graph from raw task
// records, resolving predecessor references by code into edges.
package graph

import (
	"strconv"
	"strings"

	"github.com/santastico/Critical-Path-Mathod/internal/taskfile"
)

// Build constructs a TaskGraph from raw task records. Tasks are indexed in
// input order and predecessor references resolve through a code→index map
// built once up front, so references may point forward in the table.
// Build validates shape only (codes, durations, reference resolution); it
// does not reject cycles; that is the scheduler's failure mode.
func Build(records []taskfile.Record) (*TaskGraph, error) {
	g := &TaskGraph{
		Tasks:  make([]*Task, 0, len(records)),
		byCode: make(map[string]int, len(records)),
	}

	// Index all codes before touching references.
	for i, rec := range records {
		code := strings.TrimSpace(rec.Code)
		if code == "" {
			return nil, &MissingCodeError{Record: i + 1}
		}
		if _, dup := g.byCode[code]; dup {
			return nil, &DuplicateCodeError{Code: code}
		}
		g.byCode[code] = len(g.Tasks)
		g.Tasks = append(g.Tasks, &Task{Code: code})
	}

	// Durations and predecessor edges.
	for i, rec := range records {
		t := g.Tasks[i]

		dur, ok := parseDuration(rec.Duration)
		if !ok {
			return nil, &InvalidDurationError{Code: t.Code, Value: strings.TrimSpace(rec.Duration)}
		}
		t.Duration = dur

		t.PredText = strings.TrimSpace(rec.Predecessors)
		seen := make(map[int]bool)
		for _, raw := range strings.Split(t.PredText, ",") {
			code := strings.TrimSpace(raw)
			if code == "" {
				continue
			}
			j, ok := g.byCode[code]
			if !ok {
				return nil, &UnknownPredecessorError{Code: t.Code, Predecessor: code}
			}
			if seen[j] {
				continue
			}
			seen[j] = true
			t.Preds = append(t.Preds, j)
		}
	}

	// Successor map derived from predecessor edges.
	for i, t := range g.Tasks {
		for _, j := range t.Preds {
			g.Tasks[j].Succs = append(g.Tasks[j].Succs, i)
		}
	}

	return g, nil
}

// parseDuration validates the raw duration text: present, integer, ≥ 0.
func parseDuration(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// DetectCycle returns one dependency cycle as an ordered code sequence
// (first code repeated at the end), or nil if the graph is acyclic.
// Uses DFS with coloring: white (unvisited), gray (in progress), black
// (done). Tasks are visited in input order, so detection is deterministic.
func (g *TaskGraph) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make([]int, len(g.Tasks))
	parent := make([]int, len(g.Tasks))
	for i := range parent {
		parent[i] = -1
	}

	var dfs func(n int) []int
	dfs = func(n int) []int {
		color[n] = gray
		for _, next := range g.Tasks[n].Succs {
			if color[next] == gray {
				// Found a cycle — reconstruct it
				cycle := []int{next, n}
				cur := n
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				// Reverse to get forward order
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = n
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[n] = black
		return nil
	}

	for i := range g.Tasks {
		if color[i] != white {
			continue
		}
		if cycle := dfs(i); cycle != nil {
			codes := make([]string, len(cycle))
			for k, idx := range cycle {
				codes[k] = g.Tasks[idx].Code
			}
			return codes
		}
	}
	return nil
}
