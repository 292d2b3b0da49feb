package interpreter

import "fmt"

// RuntimeError reports a type, name, arithmetic, or control failure
// detected while executing (or loading) a Program. Line is the 1-indexed
// program line of the offending statement; column is not meaningful for
// runtime errors.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Error during execution: Line %d: %s", e.Line, e.Message)
}
