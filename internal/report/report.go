// Package report renders schedule results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/santastico/Critical-Path-Mathod/internal/schedule"
	"github.com/santastico/Critical-Path-Mathod/internal/ui"
)

const ruleWidth = 90

// Print writes the schedule report: the legend, the per-task table, the
// minimum project duration and the critical path. unit labels the
// duration figure.
func Print(w io.Writer, s *schedule.Schedule, unit string) {
	fmt.Fprintln(w, ui.Title("CRITICAL PATH METHOD CALCULATOR"))
	fmt.Fprintln(w, ui.Rule(ruleWidth))
	fmt.Fprintln(w, ui.Dim("ES = Earliest Start; EF = Earliest Finish; LS = Latest Start; LF = Latest Finish"))
	fmt.Fprintln(w, ui.Rule(ruleWidth))

	printTable(w, s)

	fmt.Fprintln(w, ui.Rule(ruleWidth))
	fmt.Fprintf(w, "Minimum project duration: %s %s\n", ui.Bold(s.ProjectDuration), unit)
	if len(s.CriticalPath) > 0 {
		fmt.Fprintf(w, "Critical path: %s\n", ui.BoldRed(s.PathString()))
	} else {
		fmt.Fprintf(w, "Critical path: %s\n", ui.Dim("(none)"))
	}
}

// printTable writes the per-task columns. Cells are padded before they are
// colored, so ANSI escapes never skew the alignment.
func printTable(w io.Writer, s *schedule.Schedule) {
	codW, preW := len("COD"), len("PRE")
	for _, r := range s.Tasks {
		if len(r.Code) > codW {
			codW = len(r.Code)
		}
		if len(r.Predecessors) > preW {
			preW = len(r.Predecessors)
		}
	}

	fmt.Fprintf(w, "%-*s  %-*s  %4s  %4s  %4s  %4s  %4s  %5s\n",
		codW, "COD", preW, "PRE", "DUR", "ES", "EF", "LS", "LF", "SLACK")
	for _, r := range s.Tasks {
		line := fmt.Sprintf("%-*s  %-*s  %4d  %4d  %4d  %4d  %4d  %5d",
			codW, r.Code, preW, r.Predecessors, r.Duration, r.ES, r.EF, r.LS, r.LF, r.Slack)
		if r.Critical {
			line = ui.Red(line)
		}
		fmt.Fprintln(w, line)
	}
}

// PrintWaves writes the wave view: tasks grouped by shared earliest start.
func PrintWaves(w io.Writer, s *schedule.Schedule) {
	fmt.Fprintln(w, ui.Title("Start-Time Waves"))
	fmt.Fprintln(w, ui.Rule(ruleWidth))
	for _, wave := range s.Waves {
		fmt.Fprintf(w, "%s %d (t=%d, %d tasks):\n",
			ui.Bold("Wave"), wave.Index+1, wave.Start, len(wave.Codes))
		for _, r := range s.Tasks {
			if r.Wave != wave.Index {
				continue
			}
			crit := " "
			if r.Critical {
				crit = ui.Yellow("⚡")
			}
			fmt.Fprintf(w, "  %s %s (dur %d)\n", crit, r.Code, r.Duration)
		}
	}
}
