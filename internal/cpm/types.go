package cpm

import "strings"

// CPMResult holds the complete critical path analysis.
type CPMResult struct {
	Schedules       []*TaskSchedule // parallel to the graph's task order
	CriticalPath    []string        // ordered task codes on the critical path
	ProjectDuration int             // max earliest finish over all tasks
	Waves           []Wave          // tasks grouped by shared earliest start
	Passes          int             // relaxation passes used, forward + backward
}

// TaskSchedule holds the scheduling info for a single task.
type TaskSchedule struct {
	Code     string
	ES, EF   int // earliest start/finish
	LS, LF   int // latest start/finish
	Slack    int // LS - ES; zero means the task cannot slip
	Critical bool
	Wave     int // which start-time wave this belongs to
}

// Wave is a group of tasks sharing an earliest start time.
type Wave struct {
	Index    int
	Start    int // the shared earliest start
	Codes    []string
	Critical bool // true if the wave contains critical path tasks
}

// Schedule returns the schedule for a task code, or nil if unknown.
func (r *CPMResult) Schedule(code string) *TaskSchedule {
	for _, ts := range r.Schedules {
		if ts.Code == code {
			return ts
		}
	}
	return nil
}

// PathString renders the critical path as codes joined by " -> ".
func (r *CPMResult) PathString() string {
	return strings.Join(r.CriticalPath, " -> ")
}
