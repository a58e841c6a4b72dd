package cpm

import (
	"errors"
	"testing"

	"github.com/santastico/Critical-Path-Mathod/internal/graph"
	"github.com/santastico/Critical-Path-Mathod/internal/taskfile"
)

func buildTestGraph(t *testing.T, records []taskfile.Record) *graph.TaskGraph {
	t.Helper()
	g, err := graph.Build(records)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestAnalyze_SingleTask(t *testing.T) {
	records := []taskfile.Record{
		{Code: "A", Duration: "5"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 5 {
		t.Errorf("expected project duration 5, got %d", result.ProjectDuration)
	}
	if len(result.CriticalPath) != 1 || result.CriticalPath[0] != "A" {
		t.Errorf("expected critical path [A], got %v", result.CriticalPath)
	}
	if got := result.PathString(); got != "A" {
		t.Errorf("expected path %q, got %q", "A", got)
	}
	assertSchedule(t, result.Schedule("A"), 0, 5, 0, 5, 0, true)
}

func TestAnalyze_LinearChain(t *testing.T) {
	// A(3) -> B(2) -> C(4)
	records := []taskfile.Record{
		{Code: "A", Duration: "3"},
		{Code: "B", Duration: "2", Predecessors: "A"},
		{Code: "C", Duration: "4", Predecessors: "B"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 9 {
		t.Errorf("expected project duration 9, got %d", result.ProjectDuration)
	}
	if got := result.PathString(); got != "A -> B -> C" {
		t.Errorf("expected path %q, got %q", "A -> B -> C", got)
	}

	// A chain has one wave per task
	if len(result.Waves) != 3 {
		t.Errorf("expected 3 waves, got %d", len(result.Waves))
	}

	assertSchedule(t, result.Schedule("A"), 0, 3, 0, 3, 0, true)
	assertSchedule(t, result.Schedule("B"), 3, 5, 3, 5, 0, true)
	assertSchedule(t, result.Schedule("C"), 5, 9, 5, 9, 0, true)
}

func TestAnalyze_Diamond(t *testing.T) {
	// A -> B(3) -> D
	// A -> C(1) -> D
	records := []taskfile.Record{
		{Code: "A", Duration: "2"},
		{Code: "B", Duration: "3", Predecessors: "A"},
		{Code: "C", Duration: "1", Predecessors: "A"},
		{Code: "D", Duration: "2", Predecessors: "B,C"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 7 {
		t.Errorf("expected project duration 7, got %d", result.ProjectDuration)
	}
	if got := result.PathString(); got != "A -> B -> D" {
		t.Errorf("expected path %q, got %q", "A -> B -> D", got)
	}

	// C floats: D waits on B's finish at 5, so C can slip 2
	assertSchedule(t, result.Schedule("A"), 0, 2, 0, 2, 0, true)
	assertSchedule(t, result.Schedule("B"), 2, 5, 2, 5, 0, true)
	assertSchedule(t, result.Schedule("C"), 2, 3, 4, 5, 2, false)
	assertSchedule(t, result.Schedule("D"), 5, 7, 5, 7, 0, true)

	// Waves: [A], [B C], [D]
	if len(result.Waves) != 3 {
		t.Fatalf("expected 3 waves, got %d", len(result.Waves))
	}
	wave1 := result.Waves[1]
	if len(wave1.Codes) != 2 || wave1.Codes[0] != "B" || wave1.Codes[1] != "C" {
		t.Errorf("expected wave 1 to be [B C], got %v", wave1.Codes)
	}
	if wave1.Start != 2 {
		t.Errorf("expected wave 1 start 2, got %d", wave1.Start)
	}
	if !wave1.Critical {
		t.Error("expected wave 1 to be critical (contains B)")
	}
}

func TestAnalyze_OutOfOrderReferences(t *testing.T) {
	// Same chain as TestAnalyze_LinearChain but listed back to front, so
	// each predecessor appears after the task that names it. Convergence
	// needs a full pass per edge, which this pins at the ceiling boundary.
	records := []taskfile.Record{
		{Code: "C", Duration: "4", Predecessors: "B"},
		{Code: "B", Duration: "2", Predecessors: "A"},
		{Code: "A", Duration: "3"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 9 {
		t.Errorf("expected project duration 9, got %d", result.ProjectDuration)
	}
	if got := result.PathString(); got != "A -> B -> C" {
		t.Errorf("expected path %q, got %q", "A -> B -> C", got)
	}
	assertSchedule(t, result.Schedule("A"), 0, 3, 0, 3, 0, true)
	assertSchedule(t, result.Schedule("B"), 3, 5, 3, 5, 0, true)
	assertSchedule(t, result.Schedule("C"), 5, 9, 5, 9, 0, true)
}

func TestAnalyze_MultipleTerminals(t *testing.T) {
	// Independent A(5) and B(2). Each terminal anchors at its own
	// earliest finish, so both carry zero slack.
	records := []taskfile.Record{
		{Code: "A", Duration: "5"},
		{Code: "B", Duration: "2"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 5 {
		t.Errorf("expected project duration 5, got %d", result.ProjectDuration)
	}
	assertSchedule(t, result.Schedule("A"), 0, 5, 0, 5, 0, true)
	assertSchedule(t, result.Schedule("B"), 0, 2, 0, 2, 0, true)

	// Equal earliest starts keep input order
	if got := result.PathString(); got != "A -> B" {
		t.Errorf("expected path %q, got %q", "A -> B", got)
	}
}

func TestAnalyze_TieBreakFollowsInputOrder(t *testing.T) {
	build := func(first, second string) *CPMResult {
		t.Helper()
		records := []taskfile.Record{
			{Code: first, Duration: "2"},
			{Code: second, Duration: "2"},
			{Code: "Z", Duration: "1", Predecessors: "A,B"},
		}
		result, err := Analyze(buildTestGraph(t, records))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result
	}

	if got := build("A", "B").PathString(); got != "A -> B -> Z" {
		t.Errorf("expected path %q, got %q", "A -> B -> Z", got)
	}
	if got := build("B", "A").PathString(); got != "B -> A -> Z" {
		t.Errorf("expected path %q, got %q", "B -> A -> Z", got)
	}
}

func TestAnalyze_ZeroDurationTask(t *testing.T) {
	// A zero-duration root legitimately lands at LF=0; it must still be
	// treated as computed during the backward pass.
	records := []taskfile.Record{
		{Code: "A", Duration: "0"},
		{Code: "B", Duration: "3", Predecessors: "A"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 3 {
		t.Errorf("expected project duration 3, got %d", result.ProjectDuration)
	}
	assertSchedule(t, result.Schedule("A"), 0, 0, 0, 0, 0, true)
	assertSchedule(t, result.Schedule("B"), 0, 3, 0, 3, 0, true)
	if got := result.PathString(); got != "A -> B" {
		t.Errorf("expected path %q, got %q", "A -> B", got)
	}
}

func TestAnalyze_EmptyGraph(t *testing.T) {
	result, err := Analyze(buildTestGraph(t, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ProjectDuration != 0 {
		t.Errorf("expected project duration 0, got %d", result.ProjectDuration)
	}
	if len(result.CriticalPath) != 0 {
		t.Errorf("expected empty critical path, got %v", result.CriticalPath)
	}
	if got := result.PathString(); got != "" {
		t.Errorf("expected empty path string, got %q", got)
	}
	if len(result.Waves) != 0 {
		t.Errorf("expected no waves, got %d", len(result.Waves))
	}
}

func TestAnalyze_Cycle(t *testing.T) {
	records := []taskfile.Record{
		{Code: "A", Duration: "2", Predecessors: "B"},
		{Code: "B", Duration: "3", Predecessors: "A"},
	}
	g := buildTestGraph(t, records)

	_, err := Analyze(g)
	var cycErr *CyclicDependencyError
	if !errors.As(err, &cycErr) {
		t.Fatalf("expected CyclicDependencyError, got %v", err)
	}
	if cycErr.Stage != "forward" {
		t.Errorf("expected forward stage, got %q", cycErr.Stage)
	}
	if len(cycErr.Tasks) == 0 {
		t.Error("expected unsettled tasks in the error")
	}
}

func TestAnalyze_CycleZeroDurations(t *testing.T) {
	// Zero durations keep the forward values stable, so the cycle only
	// shows up as tasks the backward pass can never reach.
	records := []taskfile.Record{
		{Code: "A", Duration: "0", Predecessors: "B"},
		{Code: "B", Duration: "0", Predecessors: "A"},
	}
	g := buildTestGraph(t, records)

	_, err := Analyze(g)
	var cycErr *CyclicDependencyError
	if !errors.As(err, &cycErr) {
		t.Fatalf("expected CyclicDependencyError, got %v", err)
	}
	if cycErr.Stage != "backward" {
		t.Errorf("expected backward stage, got %q", cycErr.Stage)
	}
	if len(cycErr.Tasks) != 2 {
		t.Errorf("expected both tasks reported, got %v", cycErr.Tasks)
	}
}

func TestAnalyze_Invariants(t *testing.T) {
	records := []taskfile.Record{
		{Code: "A", Duration: "2"},
		{Code: "B", Duration: "3", Predecessors: "A"},
		{Code: "C", Duration: "1", Predecessors: "A"},
		{Code: "D", Duration: "2", Predecessors: "B,C"},
		{Code: "E", Duration: "4", Predecessors: "A"},
	}
	g := buildTestGraph(t, records)

	result, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxEF, maxLF := 0, 0
	for i, ts := range result.Schedules {
		dur := g.Tasks[i].Duration
		if ts.EF != ts.ES+dur {
			t.Errorf("task %s: EF %d != ES %d + duration %d", ts.Code, ts.EF, ts.ES, dur)
		}
		if ts.LF != ts.LS+dur {
			t.Errorf("task %s: LF %d != LS %d + duration %d", ts.Code, ts.LF, ts.LS, dur)
		}
		if ts.ES > ts.LS {
			t.Errorf("task %s: ES %d > LS %d", ts.Code, ts.ES, ts.LS)
		}
		if ts.Slack < 0 {
			t.Errorf("task %s: negative slack %d", ts.Code, ts.Slack)
		}
		if ts.EF > maxEF {
			maxEF = ts.EF
		}
		if ts.LF > maxLF {
			maxLF = ts.LF
		}
	}
	if result.ProjectDuration != maxEF {
		t.Errorf("project duration %d != max EF %d", result.ProjectDuration, maxEF)
	}
	if result.ProjectDuration != maxLF {
		t.Errorf("project duration %d != max LF %d", result.ProjectDuration, maxLF)
	}

	// A second run over the same graph lands on identical values.
	again, err := Analyze(g)
	if err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
	for i, ts := range result.Schedules {
		other := again.Schedules[i]
		if *ts != *other {
			t.Errorf("task %s: runs disagree: %+v vs %+v", ts.Code, ts, other)
		}
	}
	if result.PathString() != again.PathString() {
		t.Errorf("runs disagree on path: %q vs %q", result.PathString(), again.PathString())
	}
}

func assertSchedule(t *testing.T, ts *TaskSchedule, es, ef, ls, lf, slack int, critical bool) {
	t.Helper()
	if ts == nil {
		t.Fatal("schedule not found")
	}
	if ts.ES != es {
		t.Errorf("task %s: expected ES=%d, got %d", ts.Code, es, ts.ES)
	}
	if ts.EF != ef {
		t.Errorf("task %s: expected EF=%d, got %d", ts.Code, ef, ts.EF)
	}
	if ts.LS != ls {
		t.Errorf("task %s: expected LS=%d, got %d", ts.Code, ls, ts.LS)
	}
	if ts.LF != lf {
		t.Errorf("task %s: expected LF=%d, got %d", ts.Code, lf, ts.LF)
	}
	if ts.Slack != slack {
		t.Errorf("task %s: expected slack=%d, got %d", ts.Code, slack, ts.Slack)
	}
	if ts.Critical != critical {
		t.Errorf("task %s: expected critical=%v, got %v", ts.Code, critical, ts.Critical)
	}
}
