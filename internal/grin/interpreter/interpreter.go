// Package interpreter executes a parsed Grin program: it builds a
// line-indexed program and label table, then runs from line 1 against a
// variable store, a call stack, and injected input/output interfaces.
package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/williamc15/Project3Final/internal/grin/token"
)

// Interpreter owns the mutable state of a single program run: the variable
// store, the call stack, and the program counter. None of this is shared
// across runs; a fresh Interpreter is created per Run.
type Interpreter struct {
	program *Program
	env     *environment
	stack   callStack
	pc      int
	in      Input
	out     Output
}

// Run loads and executes a parsed program end to end. It returns the first
// *RuntimeError encountered, or nil on normal termination (PC running past
// the last line, or an executed END statement).
func Run(lines [][]token.Token, in Input, out Output) error {
	program, err := Load(lines)
	if err != nil {
		return err
	}
	it := &Interpreter{
		program: program,
		env:     newEnvironment(),
		pc:      1,
		in:      in,
		out:     out,
	}
	return it.run()
}

func (it *Interpreter) run() error {
	n := it.program.Len()
	for it.pc <= n {
		line := it.program.line(it.pc)
		tokens := skipLabel(line)
		halt, err := it.execute(tokens)
		if err != nil {
			return err
		}
		if halt {
			return nil
		}
	}
	return nil
}

// skipLabel drops a leading "IDENTIFIER COLON" label prefix, if present.
func skipLabel(tokens []token.Token) []token.Token {
	if len(tokens) >= 2 && tokens[0].Kind == token.IDENTIFIER && tokens[1].Kind == token.COLON {
		return tokens[2:]
	}
	return tokens
}

// execute dispatches on tokens[0]'s statement keyword and runs its
// semantics. It returns halt=true when the program should stop (END).
// Unless the statement altered the program counter itself, execute
// advances it by one line before returning.
func (it *Interpreter) execute(tokens []token.Token) (halt bool, err error) {
	kind := tokens[0].Kind
	rest := tokens[1:]

	switch kind {
	case token.LET:
		name := rest[0].Text
		v, err := it.evalValue(rest[1])
		if err != nil {
			return false, it.err(err)
		}
		it.env.Set(name, v)
		it.pc++
		return false, nil

	case token.ADD, token.SUB, token.MULT, token.DIV:
		name := rest[0].Text
		rhs, err := it.evalValue(rest[1])
		if err != nil {
			return false, it.err(err)
		}
		lhs := it.env.Get(name)
		result, err := arithmeticOp(kind, lhs, rhs)
		if err != nil {
			return false, it.err(err)
		}
		it.env.Set(name, result)
		it.pc++
		return false, nil

	case token.PRINT:
		v, err := it.evalValue(rest[0])
		if err != nil {
			return false, it.err(err)
		}
		if err := it.out.WriteLine(v.Render()); err != nil {
			return false, it.err(fmt.Errorf("write failed: %w", err))
		}
		it.pc++
		return false, nil

	case token.INNUM:
		name := rest[0].Text
		line, err := it.in.ReadLine()
		if err != nil {
			return false, it.err(fmt.Errorf("Invalid numeric input"))
		}
		v, err := parseNumericInput(line)
		if err != nil {
			return false, it.err(err)
		}
		it.env.Set(name, v)
		it.pc++
		return false, nil

	case token.INSTR:
		name := rest[0].Text
		line, err := it.in.ReadLine()
		if err != nil {
			return false, it.err(fmt.Errorf("Invalid string input"))
		}
		it.env.Set(name, String(line))
		it.pc++
		return false, nil

	case token.GOTO, token.GOSUB:
		return false, it.execJump(kind, rest)

	case token.RETURN:
		target, ok := it.stack.pop()
		if !ok {
			return false, it.err(fmt.Errorf("RETURN without GOSUB"))
		}
		it.pc = target
		return false, nil

	case token.END:
		return true, nil

	default:
		return false, it.err(fmt.Errorf("unsupported statement"))
	}
}

func (it *Interpreter) err(cause error) error {
	return &RuntimeError{Line: it.pc, Message: cause.Error()}
}

// arithmeticOp applies the ADD/SUB/MULT/DIV semantics of spec.md §4.3 for
// the given keyword.
func arithmeticOp(kind token.Kind, a, b Value) (Value, error) {
	switch kind {
	case token.ADD:
		return add(a, b)
	case token.SUB:
		return sub(a, b, "SUB")
	case token.MULT:
		return mult(a, b, "MULT")
	case token.DIV:
		return div(a, b)
	default:
		return Value{}, fmt.Errorf("not an arithmetic operator")
	}
}

// evalValue evaluates a Value token: literals evaluate to their typed
// value; identifiers evaluate to store(name), with unbound names reading
// as Integer 0.
func (it *Interpreter) evalValue(t token.Token) (Value, error) {
	switch t.Kind {
	case token.LITERAL_INTEGER:
		return Integer(t.Value.(int64)), nil
	case token.LITERAL_FLOAT:
		return Float(t.Value.(float64)), nil
	case token.LITERAL_STRING:
		return String(t.Value.(string)), nil
	case token.IDENTIFIER:
		return it.env.Get(t.Text), nil
	default:
		return Value{}, fmt.Errorf("not a value")
	}
}

// parseNumericInput parses one line of INNUM input: integer if it has no
// '.', float otherwise.
func parseNumericInput(line string) (Value, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	if !strings.Contains(trimmed, ".") {
		i, err := strconv.ParseInt(strings.TrimSpace(trimmed), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("Invalid numeric input")
		}
		return Integer(i), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return Value{}, fmt.Errorf("Invalid numeric input")
	}
	return Float(f), nil
}

// execJump implements GOTO/GOSUB, including jump-target resolution (integer
// offset vs. label lookup) and the optional IF conditional suffix.
func (it *Interpreter) execJump(kind token.Kind, rest []token.Token) error {
	targetToken := rest[0]
	condIdx := 1

	shouldJump := true
	if condIdx < len(rest) && rest[condIdx].Kind == token.IF {
		a, err := it.evalValue(rest[condIdx+1])
		if err != nil {
			return it.err(err)
		}
		op := rest[condIdx+2].Kind.String()
		b, err := it.evalValue(rest[condIdx+3])
		if err != nil {
			return it.err(err)
		}
		ok, err := evalComparison(a, op, b)
		if err != nil {
			return it.err(err)
		}
		shouldJump = ok
	}

	if !shouldJump {
		it.pc++
		return nil
	}

	target, err := it.resolveJumpTarget(targetToken)
	if err != nil {
		return it.err(err)
	}

	if target < 1 || target > it.program.Len() {
		return it.err(fmt.Errorf("Jump out of range"))
	}

	if kind == token.GOSUB {
		it.stack.push(it.pc + 1)
	}
	it.pc = target
	return nil
}

// resolveJumpTarget resolves a jump target to an absolute 1-indexed line
// number. Integer literals (and identifiers bound to an Integer) are
// relative offsets from the jumping line; string literals (and identifiers
// bound to a String) are label names.
func (it *Interpreter) resolveJumpTarget(t token.Token) (int, error) {
	switch t.Kind {
	case token.LITERAL_INTEGER:
		return it.resolveOffset(t.Value.(int64))
	case token.LITERAL_STRING:
		return it.resolveLabel(t.Value.(string))
	case token.IDENTIFIER:
		v := it.env.Get(t.Text)
		if v.Kind == KindString {
			return it.resolveLabel(v.Str)
		}
		if v.Kind == KindInteger {
			return it.resolveOffset(v.Int)
		}
		return 0, fmt.Errorf("Type mismatch in jump target")
	default:
		return 0, fmt.Errorf("Type mismatch in jump target")
	}
}

func (it *Interpreter) resolveOffset(k int64) (int, error) {
	if k == 0 {
		return 0, fmt.Errorf("Jump offset cannot be zero")
	}
	return it.pc + int(k), nil
}

func (it *Interpreter) resolveLabel(name string) (int, error) {
	line, ok := it.program.Labels[name]
	if !ok {
		return 0, fmt.Errorf("Undefined label %q", name)
	}
	return line, nil
}
