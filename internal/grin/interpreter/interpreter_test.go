package interpreter

import (
	"strings"
	"testing"

	"github.com/williamc15/Project3Final/internal/grin/parser"
)

// stringInput feeds ReadLine from a fixed slice of lines, matching the
// teacher's pattern of small in-memory mock structs rather than a
// third-party testing/mocking library.
type stringInput struct {
	lines []string
	pos   int
}

func (s *stringInput) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", nil
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// stringOutput collects every WriteLine call in order.
type stringOutput struct {
	lines []string
}

func (s *stringOutput) WriteLine(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *stringOutput) joined() string {
	if len(s.lines) == 0 {
		return ""
	}
	return strings.Join(s.lines, "\n") + "\n"
}

func runProgram(t *testing.T, source string, input []string) (*stringOutput, error) {
	t.Helper()
	lines := strings.Split(strings.Trim(source, "\n"), "\n")
	tokensPerLine, err := parser.Parse(append(lines, parser.Sentinel))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	out := &stringOutput{}
	in := &stringInput{lines: input}
	runErr := Run(tokensPerLine, in, out)
	return out, runErr
}

func TestLetAndPrintInteger(t *testing.T) {
	out, err := runProgram(t, `
LET X 5
PRINT X
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "5\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAddPromotesIntegerToFloat(t *testing.T) {
	out, err := runProgram(t, `
LET X 5
ADD X 2.0
PRINT X
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "7.0\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestInnumReadsIntegerOrFloat(t *testing.T) {
	out, err := runProgram(t, `
INNUM N
PRINT N
`, []string{"42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "42\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	out, err = runProgram(t, `
INNUM N
PRINT N
`, []string{"3.14"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "3.14\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGotoLoopWithConditionalIf(t *testing.T) {
	out, err := runProgram(t, `
START: LET I 0
LOOP: ADD I 1
PRINT I
GOTO "LOOP" IF I < 3
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "1\n2\n3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGosubAndReturn(t *testing.T) {
	out, err := runProgram(t, `
GOSUB "SUB"
END
SUB: PRINT "hi"
RETURN
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "hi\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAddTypeMismatchIsARuntimeErrorAtTheOffendingLine(t *testing.T) {
	out, err := runProgram(t, `
LET X "a"
ADD X 1
`, nil)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got error of type %T, want *RuntimeError", err)
	}
	if rerr.Line != 2 {
		t.Errorf("error line = %d, want 2", rerr.Line)
	}
	if len(out.lines) != 0 {
		t.Errorf("expected no output before the error, got %v", out.lines)
	}
}

func TestUnboundVariableReadsAsIntegerZero(t *testing.T) {
	out, err := runProgram(t, `
PRINT X
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "0\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAddConcatenatesStrings(t *testing.T) {
	out, err := runProgram(t, `
LET X "foo"
ADD X "bar"
PRINT X
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "foobar\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, err := runProgram(t, `
LET X 1
DIV X 0
`, nil)
	if err == nil {
		t.Fatal("expected a runtime error for division by zero")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got error of type %T, want *RuntimeError", err)
	}
}

func TestJumpToUndefinedLabelIsARuntimeError(t *testing.T) {
	_, err := runProgram(t, `
GOTO "NOWHERE"
`, nil)
	if err == nil {
		t.Fatal("expected a runtime error for an undefined label")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got error of type %T, want *RuntimeError", err)
	}
}

func TestDuplicateLabelIsARuntimeErrorAtLoadTime(t *testing.T) {
	_, err := runProgram(t, `
A: PRINT 1
A: PRINT 2
`, nil)
	if err == nil {
		t.Fatal("expected a runtime error for a duplicate label")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got error of type %T, want *RuntimeError", err)
	}
}

func TestProgramRunningOffTheEndTerminatesNormally(t *testing.T) {
	out, err := runProgram(t, `
PRINT 1
PRINT 2
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "1\n2\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEndStopsBeforeTrailingStatements(t *testing.T) {
	out, err := runProgram(t, `
PRINT 1
END
PRINT 2
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestReturnWithoutGosubIsARuntimeError(t *testing.T) {
	_, err := runProgram(t, `
RETURN
`, nil)
	if err == nil {
		t.Fatal("expected a runtime error for RETURN without a matching GOSUB")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("got error of type %T, want *RuntimeError", err)
	}
}

func TestRelativeIntegerJumpTarget(t *testing.T) {
	out, err := runProgram(t, `
GOTO 2
PRINT "skipped"
PRINT "landed"
`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.joined(), "landed\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
