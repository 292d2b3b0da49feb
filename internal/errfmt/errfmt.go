// Package errfmt classifies the three Grin error kinds so the driver can
// decide how to report them and which process exit code to use. The errors
// themselves already carry their spec-mandated surface text (see
// grin/lexer.LexError, grin/parser.ParseError, grin/interpreter.RuntimeError);
// this package does not reformat them, only recognizes them.
package errfmt

import (
	"errors"

	"github.com/williamc15/Project3Final/internal/grin/interpreter"
	"github.com/williamc15/Project3Final/internal/grin/lexer"
	"github.com/williamc15/Project3Final/internal/grin/parser"
)

// Kind names which of the three core error categories err belongs to, or
// "" if err is none of them.
func Kind(err error) string {
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	var runtimeErr *interpreter.RuntimeError

	switch {
	case errors.As(err, &lexErr):
		return "lex"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &runtimeErr):
		return "runtime"
	default:
		return ""
	}
}

// ExitCode returns the driver's exit code policy: 0 for no error, 1 for any
// surfaced lex/parse/runtime error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
