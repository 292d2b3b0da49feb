// Package parser validates the token stream of each Grin source line against
// the language grammar, stopping at the sentinel "." line.
package parser

import (
	"fmt"
	"strings"

	"github.com/williamc15/Project3Final/internal/grin/lexer"
	"github.com/williamc15/Project3Final/internal/grin/location"
	"github.com/williamc15/Project3Final/internal/grin/token"
)

// ParseError is raised when a line's token stream does not match the Grin
// grammar, carrying a message and the location where the error was detected.
type ParseError struct {
	Message string
	Loc     location.Location
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error during parsing: %s: %s", e.Loc, e.Message)
}

// Sentinel is the line that terminates a Grin program's source.
const Sentinel = "."

// Parse walks lines in order, tokenizing and validating each one, and
// returns the validated token list per line up to (but not including) the
// sentinel "." line. It stops early if the sentinel is found before the
// input is exhausted.
func Parse(lines []string) ([][]token.Token, error) {
	var result [][]token.Token
	for i, line := range lines {
		tokens, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if isSentinel(tokens) {
			return result, nil
		}
		result = append(result, tokens)
	}
	return result, nil
}

func isSentinel(tokens []token.Token) bool {
	return len(tokens) == 1 && tokens[0].Kind == token.DOT
}

// valueKinds are the token kinds admissible wherever the grammar says Value.
var valueKinds = []token.Kind{
	token.LITERAL_INTEGER, token.LITERAL_FLOAT, token.LITERAL_STRING, token.IDENTIFIER,
}

// jumpTargetKinds are the token kinds admissible as a GOTO/GOSUB target.
var jumpTargetKinds = []token.Kind{
	token.LITERAL_INTEGER, token.LITERAL_STRING, token.IDENTIFIER,
}

// comparisonKinds are the token kinds admissible as a comparison operator.
var comparisonKinds = []token.Kind{
	token.EQUAL, token.NOT_EQUAL, token.LESS_THAN, token.LESS_THAN_OR_EQUAL,
	token.GREATER_THAN, token.GREATER_THAN_OR_EQUAL,
}

type lineParser struct {
	line       string
	lineNumber int
	tokens     []token.Token
	index      int
}

func parseLine(line string, lineNumber int) ([]token.Token, error) {
	tokens, err := lexer.Tokenize(line, lineNumber)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, errAtEndOfLine(line, lineNumber, "Program lines cannot be empty")
	}
	if isSentinel(tokens) {
		return tokens, nil
	}

	p := &lineParser{line: line, lineNumber: lineNumber, tokens: tokens}

	if err := p.parseLabel(); err != nil {
		return nil, err
	}

	if p.index >= len(p.tokens) {
		return nil, p.errAtEndOfLine("Statement body expected")
	}

	if err := p.parseBody(); err != nil {
		return nil, err
	}

	if p.index < len(p.tokens) {
		return nil, p.errAtToken("Extra tokens after statement end", p.tokens[p.index])
	}

	return tokens, nil
}

func errAtEndOfLine(line string, lineNumber int, message string) error {
	loc, _ := location.New(lineNumber, len(line)+1)
	return &ParseError{Message: message, Loc: loc}
}

func (p *lineParser) errAtEndOfLine(message string) error {
	return errAtEndOfLine(p.line, p.lineNumber, message)
}

func (p *lineParser) errAtToken(message string, t token.Token) error {
	return &ParseError{Message: message, Loc: t.Loc}
}

func (p *lineParser) tokenIs(kinds ...token.Kind) bool {
	if p.index >= len(p.tokens) {
		return false
	}
	for _, k := range kinds {
		if p.tokens[p.index].Kind == k {
			return true
		}
	}
	return false
}

func (p *lineParser) expect(kinds ...token.Kind) error {
	if p.tokenIs(kinds...) {
		return nil
	}
	message := kindNames(kinds) + " expected"
	if p.index >= len(p.tokens) {
		return p.errAtEndOfLine(message)
	}
	return p.errAtToken(message, p.tokens[p.index])
}

func kindNames(kinds []token.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func (p *lineParser) parseLabel() error {
	if p.tokenIs(token.IDENTIFIER) {
		p.index++
		if err := p.expect(token.COLON); err != nil {
			return err
		}
		p.index++
	}
	return nil
}

// bodyParsers dispatches on the statement keyword, mirroring the reference
// implementation's per-keyword parse table.
var bodyParsers = map[token.Kind]func(*lineParser) error{
	token.LET:    (*lineParser).parseVariableUpdate,
	token.ADD:    (*lineParser).parseVariableUpdate,
	token.SUB:    (*lineParser).parseVariableUpdate,
	token.MULT:   (*lineParser).parseVariableUpdate,
	token.DIV:    (*lineParser).parseVariableUpdate,
	token.PRINT:  (*lineParser).parseValueStatement,
	token.INNUM:  (*lineParser).parseInput,
	token.INSTR:  (*lineParser).parseInput,
	token.GOTO:   (*lineParser).parseJump,
	token.GOSUB:  (*lineParser).parseJump,
	token.RETURN: (*lineParser).parseEmpty,
	token.END:    (*lineParser).parseEmpty,
}

func (p *lineParser) parseBody() error {
	kind := p.tokens[p.index].Kind
	parse, ok := bodyParsers[kind]
	if !ok {
		return p.errAtToken("Statement keyword expected", p.tokens[p.index])
	}
	p.index++
	return parse(p)
}

func (p *lineParser) parseVariableUpdate() error {
	if err := p.expect(token.IDENTIFIER); err != nil {
		return err
	}
	p.index++
	return p.parseValue()
}

func (p *lineParser) parseValueStatement() error {
	return p.parseValue()
}

func (p *lineParser) parseInput() error {
	if err := p.expect(token.IDENTIFIER); err != nil {
		return err
	}
	p.index++
	return nil
}

func (p *lineParser) parseEmpty() error {
	return nil
}

func (p *lineParser) parseJump() error {
	if err := p.parseJumpTarget(); err != nil {
		return err
	}
	if p.tokenIs(token.IF) {
		p.index++
		if err := p.parseValue(); err != nil {
			return err
		}
		if err := p.parseComparisonOperator(); err != nil {
			return err
		}
		if err := p.parseValue(); err != nil {
			return err
		}
	}
	return nil
}

func (p *lineParser) parseJumpTarget() error {
	if err := p.expect(jumpTargetKinds...); err != nil {
		return err
	}
	p.index++
	return nil
}

func (p *lineParser) parseValue() error {
	if err := p.expect(valueKinds...); err != nil {
		return err
	}
	p.index++
	return nil
}

func (p *lineParser) parseComparisonOperator() error {
	if err := p.expect(comparisonKinds...); err != nil {
		return err
	}
	p.index++
	return nil
}
