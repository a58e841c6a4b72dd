package graph

import "fmt"

// MissingCodeError reports a record with an empty task code.
type MissingCodeError struct {
	Record int // 1-based record position in the input
}

func (e *MissingCodeError) Error() string {
	return fmt.Sprintf("record %d has no task code", e.Record)
}

// DuplicateCodeError reports a task code used by more than one record.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("duplicate task code %q", e.Code)
}

// InvalidDurationError reports a duration that is absent or not a
// non-negative integer. Value holds the raw field text, empty when the
// field was absent.
type InvalidDurationError struct {
	Code  string
	Value string
}

func (e *InvalidDurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("task %q has no duration", e.Code)
	}
	return fmt.Sprintf("task %q has invalid duration %q: want a non-negative integer", e.Code, e.Value)
}

// UnknownPredecessorError reports a predecessor reference to a code that
// does not exist in the task set.
type UnknownPredecessorError struct {
	Code        string // task naming the predecessor
	Predecessor string // code that failed to resolve
}

func (e *UnknownPredecessorError) Error() string {
	return fmt.Sprintf("task %q references unknown predecessor %q", e.Code, e.Predecessor)
}
