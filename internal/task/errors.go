package task

import "fmt"

// IndexError reports a Remove or Modify whose 1-based index falls outside
// the current list. The list is never mutated when this error is returned.
type IndexError struct {
	Index int // requested 1-based index
	Len   int // list length at the time of the request
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("no task %d: the list is empty", e.Index)
	}
	return fmt.Sprintf("no task %d: valid indices are 1 through %d", e.Index, e.Len)
}

// FormatError reports a snapshot that could not be decoded, either because
// it is not valid JSON or because it fails schema validation.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid task snapshot: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}
