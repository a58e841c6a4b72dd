// Package taskfile reads project task tables from CSV, JSON and HCL
// sources into raw records. Loaders normalize shape only; semantic
// validation (durations, predecessor resolution) belongs to the graph
// builder so every input format shares one validation path.
package taskfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
)

// Record is one raw task row as read from an input source. All fields are
// text: an empty Duration means the field was absent, and Predecessors
// holds the unparsed form (empty, a single code, or comma-separated codes).
type Record struct {
	Code         string
	Duration     string
	Predecessors string
}

// Load reads task records from path. Files are parsed by extension
// (.csv, .json, .hcl); a directory is treated as a set of .hcl task files
// merged in walk order.
func Load(path string) ([]Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loadDir(path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	case ".hcl":
		return loadHCL(path, hclparse.NewParser())
	default:
		return nil, fmt.Errorf("unsupported task file extension %q (want .csv, .json or .hcl)", ext)
	}
}
