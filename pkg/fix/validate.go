package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit whose range does not fit the
// buffer.
type ValidationError struct {
	Edit    Edit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// OverlappingFixesError describes two edits competing for the same
// bytes. Applying both would corrupt the output, so batches containing
// overlaps are rejected outright.
type OverlappingFixesError struct {
	First  Edit
	Second Edit
}

func (e *OverlappingFixesError) Error() string {
	return fmt.Sprintf("overlapping fixes: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Validate checks that every edit's range fits a buffer of contentLen
// bytes. It returns the first violation found, or nil.
func Validate(edits []Edit, contentLen int) error {
	for _, edit := range edits {
		if edit.Start < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.End < edit.Start {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.End > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.End, contentLen),
			}
		}
	}
	return nil
}

// Sort orders edits by start offset, then end offset, producing the
// deterministic application order Apply expects.
func Sort(edits []Edit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start < edits[j].Start
		}
		return edits[i].End < edits[j].End
	})
}

// DetectOverlaps scans a sorted edit slice for range overlaps and
// returns an OverlappingFixesError for the first pair found, or nil.
// Two zero-length edits at the same offset also conflict: their
// relative order is unspecified.
func DetectOverlaps(edits []Edit) error {
	for i := 1; i < len(edits); i++ {
		prev, curr := edits[i-1], edits[i]
		if curr.Start < prev.End || (curr.Start == prev.Start && curr.End == prev.End && prev.Len() == 0) {
			return &OverlappingFixesError{First: prev, Second: curr}
		}
	}
	return nil
}

// Prepare validates, sorts, and overlap-checks a batch of edits,
// returning a sorted copy ready for Apply. The input slice is not
// modified.
func Prepare(edits []Edit, contentLen int) ([]Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}
	if err := Validate(edits, contentLen); err != nil {
		return nil, err
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	Sort(sorted)
	if err := DetectOverlaps(sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}
