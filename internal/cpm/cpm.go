// Package cpm computes critical path method schedules: earliest and
// latest start/finish times, slack, and the zero-slack critical path.
//
// The propagation is iterative fixed-point relaxation rather than a
// topological sort. Repeated full passes push times along the dependency
// edges until nothing changes, which tolerates predecessor references in
// any order relative to the task table at the cost of extra passes. An
// acyclic graph settles within one pass per task; the pass ceiling turns
// cyclic input into an error instead of an endless loop.
package cpm

import (
	"fmt"
	"strings"

	"github.com/santastico/Critical-Path-Mathod/internal/graph"
)

// CyclicDependencyError reports propagation that could not settle every
// task, which means the dependency edges contain a cycle.
type CyclicDependencyError struct {
	Stage  string   // "forward" or "backward"
	Passes int      // passes run before giving up
	Tasks  []string // codes of the tasks that never settled
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s pass left tasks unsettled after %d passes: %s",
		e.Stage, e.Passes, strings.Join(e.Tasks, ", "))
}

// Analyze performs critical path method analysis on a task graph. The
// returned result carries one schedule per task in the graph's input
// order. An empty graph is a valid project with duration zero and an
// empty path.
func Analyze(g *graph.TaskGraph) (*CPMResult, error) {
	result := &CPMResult{
		Schedules: make([]*TaskSchedule, g.TaskCount()),
	}
	for i, t := range g.Tasks {
		result.Schedules[i] = &TaskSchedule{Code: t.Code}
	}
	if len(g.Tasks) == 0 {
		return result, nil
	}

	forward, err := forwardPass(g, result.Schedules)
	if err != nil {
		return nil, err
	}
	backward, err := backwardPass(g, result.Schedules)
	if err != nil {
		return nil, err
	}
	result.Passes = forward + backward

	extract(result)
	return result, nil
}

// forwardPass computes earliest start and finish times, iterating in index
// order. A predecessor that has not propagated yet contributes its current
// (zero) finish, so early passes may under-estimate; later passes only
// raise values, one dependency edge further per pass in the worst case.
func forwardPass(g *graph.TaskGraph, schedules []*TaskSchedule) (int, error) {
	ceiling := len(g.Tasks) + 1
	var unsettled []string

	for pass := 1; pass <= ceiling; pass++ {
		unsettled = unsettled[:0]
		for i, t := range g.Tasks {
			ts := schedules[i]

			es := 0
			for _, p := range t.Preds {
				if ef := schedules[p].EF; ef > es {
					es = ef
				}
			}
			ef := es + t.Duration

			if es != ts.ES || ef != ts.EF {
				ts.ES = es
				ts.EF = ef
				unsettled = append(unsettled, t.Code)
			}
		}
		if len(unsettled) == 0 {
			return pass, nil
		}
	}
	return ceiling, &CyclicDependencyError{
		Stage:  "forward",
		Passes: ceiling,
		Tasks:  append([]string(nil), unsettled...),
	}
}

// backwardPass computes latest start and finish times, iterating in
// reverse index order since values flow from terminals back toward roots.
// Terminal tasks anchor at their own earliest finish. Everyone else takes
// the minimum latest start over successors that already have a value;
// resolution is tracked explicitly so a legitimate zero time is not
// mistaken for "not computed yet".
func backwardPass(g *graph.TaskGraph, schedules []*TaskSchedule) (int, error) {
	resolved := make([]bool, len(g.Tasks))
	for i, t := range g.Tasks {
		if len(t.Succs) == 0 {
			ts := schedules[i]
			ts.LF = ts.EF
			ts.LS = ts.LF - t.Duration
			resolved[i] = true
		}
	}

	ceiling := len(g.Tasks) + 1
	var unsettled []string

	for pass := 1; pass <= ceiling; pass++ {
		unsettled = unsettled[:0]
		for i := len(g.Tasks) - 1; i >= 0; i-- {
			t := g.Tasks[i]
			if len(t.Succs) == 0 {
				continue
			}
			ts := schedules[i]

			lf := 0
			have := false
			for _, s := range t.Succs {
				if !resolved[s] {
					continue
				}
				if ls := schedules[s].LS; !have || ls < lf {
					lf = ls
					have = true
				}
			}
			if !have {
				// No successor has a value yet; wait for a later pass.
				continue
			}

			ls := lf - t.Duration
			if !resolved[i] || lf != ts.LF || ls != ts.LS {
				ts.LF = lf
				ts.LS = ls
				resolved[i] = true
				unsettled = append(unsettled, t.Code)
			}
		}
		if len(unsettled) == 0 {
			// Settled. A task that still has no value cannot reach any
			// terminal, which only happens on a cycle.
			var orphaned []string
			for i, ok := range resolved {
				if !ok {
					orphaned = append(orphaned, g.Tasks[i].Code)
				}
			}
			if orphaned != nil {
				return pass, &CyclicDependencyError{Stage: "backward", Passes: pass, Tasks: orphaned}
			}
			return pass, nil
		}
	}
	return ceiling, &CyclicDependencyError{
		Stage:  "backward",
		Passes: ceiling,
		Tasks:  append([]string(nil), unsettled...),
	}
}
