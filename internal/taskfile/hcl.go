package taskfile

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclTask is one task block in an HCL task file:
//
//	task "A" {
//	  duration = 4
//	  after    = ["B", "C"]
//	}
type hclTask struct {
	Code     string   `hcl:"code,label"`
	Duration *int     `hcl:"duration,optional"`
	After    []string `hcl:"after,optional"`
}

type hclFile struct {
	Tasks []*hclTask `hcl:"task,block"`
}

// loadHCL parses one HCL task file into records. The parser is shared so
// a directory load keeps one file set for diagnostics.
func loadHCL(path string, parser *hclparse.Parser) ([]Record, error) {
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	var file hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	records := make([]Record, 0, len(file.Tasks))
	for _, t := range file.Tasks {
		rec := Record{
			Code:         strings.TrimSpace(t.Code),
			Predecessors: strings.Join(t.After, ","),
		}
		if t.Duration != nil {
			rec.Duration = strconv.Itoa(*t.Duration)
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadDir merges every .hcl task file under dir. WalkDir visits paths in
// lexical order, so the merged record sequence is deterministic; cross-file
// predecessor references resolve in the builder like any others.
func loadDir(dir string) ([]Record, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl task files under %s", dir)
	}

	parser := hclparse.NewParser()
	var records []Record
	for _, f := range files {
		recs, err := loadHCL(f, parser)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}
