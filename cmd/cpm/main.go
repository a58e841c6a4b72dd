package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santastico/Critical-Path-Mathod/internal/cpm"
	"github.com/santastico/Critical-Path-Mathod/internal/graph"
	"github.com/santastico/Critical-Path-Mathod/internal/report"
	"github.com/santastico/Critical-Path-Mathod/internal/schedule"
	"github.com/santastico/Critical-Path-Mathod/internal/taskfile"
	"github.com/santastico/Critical-Path-Mathod/internal/ui"
	"github.com/spf13/cobra"
)

const defaultTaskFile = "tasks.csv"

var (
	flagJSON   bool
	flagOutput string
	flagWaves  bool
	flagUnit   string
	flagFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cpm",
		Short: "Critical path method calculator for project task tables",
		Long: `cpm reads a project task table (CSV, JSON or HCL), resolves the
dependency graph, and computes every task's earliest and latest start and
finish times, its slack, and the zero-slack critical path that sets the
minimum project duration.`,
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(vizCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// taskArg returns the task file argument, defaulting to tasks.csv.
func taskArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultTaskFile
}

// buildSchedule runs the full pipeline: load records, build the graph,
// run the analysis, assemble the schedule document.
func buildSchedule(path string) (*schedule.Schedule, *graph.TaskGraph, *cpm.CPMResult, error) {
	records, err := taskfile.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	g, err := graph.Build(records)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build task graph: %w", err)
	}

	result, err := cpm.Analyze(g)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CPM analysis: %w", err)
	}

	return schedule.Build(g, result, path), g, result, nil
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [taskfile]",
		Short: "Compute the CPM schedule and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, _, _, err := buildSchedule(taskArg(args))
			if err != nil {
				return err
			}

			if flagOutput != "" {
				if err := sched.Save(flagOutput); err != nil {
					return err
				}
			}

			if flagJSON {
				return outputJSON(sched)
			}

			report.Print(os.Stdout, sched, flagUnit)
			if flagWaves {
				fmt.Println()
				report.PrintWaves(os.Stdout, sched)
			}
			if flagOutput != "" {
				fmt.Printf("\n%s schedule written to %s\n", ui.Mark(true), flagOutput)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Save schedule JSON to file")
	cmd.Flags().BoolVar(&flagWaves, "waves", false, "Show start-time waves after the report")
	cmd.Flags().StringVar(&flagUnit, "unit", "days", "Duration unit label for the report")

	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [taskfile]",
		Short: "Validate a task table without computing the schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := taskArg(args)

			records, err := taskfile.Load(path)
			if err != nil {
				return err
			}

			g, err := graph.Build(records)
			if err != nil {
				return err
			}

			if cycle := g.DetectCycle(); cycle != nil {
				return fmt.Errorf("dependency cycle: %s", strings.Join(cycle, " -> "))
			}

			if flagJSON {
				return outputJSON(map[string]interface{}{
					"file":      path,
					"tasks":     g.TaskCount(),
					"edges":     g.EdgeCount(),
					"roots":     g.Roots(),
					"terminals": g.Terminals(),
					"acyclic":   true,
				})
			}

			fmt.Printf("%s %s: %d tasks, %d dependencies\n",
				ui.Mark(true), path, g.TaskCount(), g.EdgeCount())
			fmt.Printf("%s acyclic (roots: %s; terminals: %s)\n",
				ui.Mark(true), strings.Join(g.Roots(), ", "), strings.Join(g.Terminals(), ", "))
			return nil
		},
	}

	return cmd
}

func vizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz [taskfile]",
		Short: "Visualize the dependency graph with the schedule overlaid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, result, err := buildSchedule(taskArg(args))
			if err != nil {
				return err
			}

			if flagFormat == "dot" {
				return printDOT(g, result)
			}
			printASCIIDAG(g, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "ascii", "Output format (ascii, dot)")

	return cmd
}

// printASCIIDAG renders the graph wave by wave with dependency edges.
func printASCIIDAG(g *graph.TaskGraph, result *cpm.CPMResult) {
	fmt.Printf("🔗 %s\n", ui.BoldCyan("Task Dependency Graph"))
	fmt.Println(ui.Cyan("═══════════════════════"))
	fmt.Println()

	for _, wave := range result.Waves {
		fmt.Printf("%s Wave %d (t=%d) %s\n",
			ui.Cyan("──"), wave.Index+1, wave.Start, ui.Cyan("──────────────────────────────"))
		for _, code := range wave.Codes {
			i, ok := g.Index(code)
			if !ok {
				continue
			}
			t := g.Tasks[i]
			ts := result.Schedules[i]

			crit := " "
			if ts.Critical {
				crit = ui.Yellow("⚡")
			}
			fmt.Printf("  %s [%s] dur %d, slack %d\n", crit, ui.BoldMagenta(t.Code), t.Duration, ts.Slack)

			// Show edges
			for _, s := range t.Succs {
				fmt.Printf("      %s %s\n", ui.Dim("└──→"), ui.Magenta(g.Tasks[s].Code))
			}
		}
		fmt.Println()
	}
}

// printDOT emits the graph as Graphviz DOT with the critical path in red.
func printDOT(g *graph.TaskGraph, result *cpm.CPMResult) error {
	fmt.Println("digraph cpm {")
	fmt.Println("  rankdir=LR;")
	fmt.Println("  node [shape=box, style=rounded];")
	fmt.Println()

	for i, t := range g.Tasks {
		ts := result.Schedules[i]
		label := fmt.Sprintf("%s\\ndur %d, slack %d", t.Code, t.Duration, ts.Slack)
		attrs := fmt.Sprintf(`label="%s"`, label)
		if ts.Critical {
			attrs += `, style="rounded,bold", color=red`
		}
		fmt.Printf("  %q [%s];\n", t.Code, attrs)
	}

	fmt.Println()

	for i, t := range g.Tasks {
		for _, p := range t.Preds {
			style := ""
			if result.Schedules[p].Critical && result.Schedules[i].Critical {
				style = ` [color=red, penwidth=2]`
			}
			fmt.Printf("  %q -> %q%s;\n", g.Tasks[p].Code, t.Code, style)
		}
	}

	fmt.Println("}")
	return nil
}

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
