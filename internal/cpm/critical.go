package cpm

import "sort"

// extract derives slack, the critical path, the project duration and the
// wave grouping from the propagated times.
func extract(result *CPMResult) {
	duration := 0
	for _, ts := range result.Schedules {
		ts.Slack = ts.LS - ts.ES
		ts.Critical = ts.Slack == 0
		if ts.EF > duration {
			duration = ts.EF
		}
	}
	result.ProjectDuration = duration

	// Zero-slack tasks ordered by ascending earliest start; equal starts
	// keep input order (stable sort over schedule indices).
	var critical []int
	for i, ts := range result.Schedules {
		if ts.Critical {
			critical = append(critical, i)
		}
	}
	sort.SliceStable(critical, func(a, b int) bool {
		return result.Schedules[critical[a]].ES < result.Schedules[critical[b]].ES
	})
	for _, i := range critical {
		result.CriticalPath = append(result.CriticalPath, result.Schedules[i].Code)
	}

	result.Waves = computeWaves(result)
}

// computeWaves groups tasks by earliest start: tasks sharing a start time
// become free to begin together once their predecessors finish.
func computeWaves(result *CPMResult) []Wave {
	groups := make(map[int][]*TaskSchedule)
	for _, ts := range result.Schedules {
		groups[ts.ES] = append(groups[ts.ES], ts)
	}

	starts := make([]int, 0, len(groups))
	for es := range groups {
		starts = append(starts, es)
	}
	sort.Ints(starts)

	waves := make([]Wave, len(starts))
	for w, es := range starts {
		members := groups[es]
		codes := make([]string, len(members))
		critical := false
		for k, ts := range members {
			ts.Wave = w
			codes[k] = ts.Code
			if ts.Critical {
				critical = true
			}
		}
		waves[w] = Wave{Index: w, Start: es, Codes: codes, Critical: critical}
	}
	return waves
}
