package interpreter

import (
	"fmt"

	"github.com/williamc15/Project3Final/internal/grin/token"
)

// Program is a 1-indexed sequence of parsed, validated program lines (each
// a token list), together with a label table mapping label identifiers to
// their 1-indexed line number. Program and its label table are built once
// by Load and then held immutable for the run.
type Program struct {
	Lines  []([]token.Token) // 0-indexed storage; Lines[i] is line i+1
	Labels map[string]int
}

// Len returns the number of executable lines N.
func (p *Program) Len() int { return len(p.Lines) }

// line returns the token list for the given 1-indexed line number.
func (p *Program) line(n int) []token.Token { return p.Lines[n-1] }

// Load builds a 1-indexed program and label table from the parser's
// per-line token lists. Duplicate labels are a runtime error detected here,
// at load time, before execution begins.
func Load(lines [][]token.Token) (*Program, error) {
	p := &Program{Lines: lines, Labels: make(map[string]int)}

	for i, tokens := range lines {
		lineNumber := i + 1
		if len(tokens) >= 2 && tokens[0].Kind == token.IDENTIFIER && tokens[1].Kind == token.COLON {
			name := tokens[0].Text
			if _, exists := p.Labels[name]; exists {
				return nil, &RuntimeError{
					Line:    lineNumber,
					Message: fmt.Sprintf("Duplicate label %q", name),
				}
			}
			p.Labels[name] = lineNumber
		}
	}

	return p, nil
}
