// Package schedule assembles the persistable schedule document from a
// task graph and its critical path analysis.
package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/santastico/Critical-Path-Mathod/internal/cpm"
	"github.com/santastico/Critical-Path-Mathod/internal/graph"
)

// Row is one task's line in the schedule, in original input order.
type Row struct {
	Code         string `json:"code"`
	Predecessors string `json:"predecessors,omitempty"`
	Duration     int    `json:"duration"`
	ES           int    `json:"es"`
	EF           int    `json:"ef"`
	LS           int    `json:"ls"`
	LF           int    `json:"lf"`
	Slack        int    `json:"slack"`
	Critical     bool   `json:"critical"`
	Wave         int    `json:"wave"`
}

// WaveGroup is a set of tasks sharing an earliest start.
type WaveGroup struct {
	Index    int      `json:"index"`
	Start    int      `json:"start"`
	Codes    []string `json:"codes"`
	Critical bool     `json:"critical"`
}

// Schedule is the complete schedule result for a project.
type Schedule struct {
	CreatedAt       time.Time   `json:"created_at"`
	Source          string      `json:"source,omitempty"`
	TotalTasks      int         `json:"total_tasks"`
	ProjectDuration int         `json:"project_duration"`
	CriticalPath    []string    `json:"critical_path"`
	Tasks           []Row       `json:"tasks"`
	Waves           []WaveGroup `json:"waves"`
}

// Build assembles the schedule document from a graph and its analysis.
// Rows keep the graph's input order.
func Build(g *graph.TaskGraph, res *cpm.CPMResult, source string) *Schedule {
	s := &Schedule{
		CreatedAt:       time.Now().UTC(),
		Source:          source,
		TotalTasks:      g.TaskCount(),
		ProjectDuration: res.ProjectDuration,
		CriticalPath:    res.CriticalPath,
		Tasks:           make([]Row, 0, g.TaskCount()),
	}
	for i, t := range g.Tasks {
		ts := res.Schedules[i]
		s.Tasks = append(s.Tasks, Row{
			Code:         t.Code,
			Predecessors: t.PredText,
			Duration:     t.Duration,
			ES:           ts.ES,
			EF:           ts.EF,
			LS:           ts.LS,
			LF:           ts.LF,
			Slack:        ts.Slack,
			Critical:     ts.Critical,
			Wave:         ts.Wave,
		})
	}
	for _, w := range res.Waves {
		s.Waves = append(s.Waves, WaveGroup{
			Index:    w.Index,
			Start:    w.Start,
			Codes:    w.Codes,
			Critical: w.Critical,
		})
	}
	return s
}

// PathString renders the critical path as codes joined by " -> ".
func (s *Schedule) PathString() string {
	return strings.Join(s.CriticalPath, " -> ")
}

// Save writes the schedule as indented JSON.
func (s *Schedule) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}

// Load reads a schedule written by Save.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return &s, nil
}
