package caption

import "fmt"

// FormatError reports caption input that could not be read or decoded as text.
type FormatError struct {
	Source string
	Line   int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("caption %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("caption %s: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
