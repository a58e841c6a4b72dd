package taskfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// loadJSON reads tasks from a JSON file: either a top-level array of task
// objects or an object with a "tasks" array. Each task has a "code", an
// optional "duration" (number or numeric string) and optional
// "predecessors" (comma-separated string or array of codes).
func loadJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse %s: invalid JSON", path)
	}

	list := gjson.ParseBytes(data)
	if !list.IsArray() {
		list = list.Get("tasks")
		if !list.IsArray() {
			return nil, fmt.Errorf("parse %s: expected a task array or a %q field", path, "tasks")
		}
	}

	var records []Record
	list.ForEach(func(_, item gjson.Result) bool {
		rec := Record{
			Code:         strings.TrimSpace(item.Get("code").String()),
			Predecessors: predecessorText(item.Get("predecessors")),
		}
		if d := item.Get("duration"); d.Exists() {
			rec.Duration = strings.TrimSpace(d.String())
		}
		records = append(records, rec)
		return true
	})
	return records, nil
}

// predecessorText renders a predecessors value, string or array, as the
// comma-separated form the graph builder parses.
func predecessorText(v gjson.Result) string {
	if !v.Exists() {
		return ""
	}
	if v.IsArray() {
		var codes []string
		v.ForEach(func(_, c gjson.Result) bool {
			codes = append(codes, c.String())
			return true
		})
		return strings.Join(codes, ",")
	}
	return v.String()
}
