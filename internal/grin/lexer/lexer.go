// Package lexer scans a single line of Grin source text into a sequence of
// tokens. See grin/token for the token model.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/williamc15/Project3Final/internal/grin/location"
	"github.com/williamc15/Project3Final/internal/grin/token"
)

// LexError is raised when lexing fails, carrying a message and the location
// where the error was detected.
type LexError struct {
	Message string
	Loc     location.Location
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Error during lexing: %s: %s", e.Loc, e.Message)
}

// Tokenize scans one line of Grin source (without its line terminator) and
// returns the tokens found on it, in order. lineNumber is the 1-indexed line
// this text came from, used to stamp each token's location.
//
// Tokenize fails fast: the first lexical error aborts the scan and no
// partial token slice is returned.
func Tokenize(line string, lineNumber int) ([]token.Token, error) {
	s := &scanner{line: line, lineNumber: lineNumber}
	return s.run()
}

type scanner struct {
	line       string
	lineNumber int
	index      int
	start      int
	tokens     []token.Token
}

func (s *scanner) run() ([]token.Token, error) {
	for {
		for s.index < len(s.line) && isSpace(s.line[s.index]) {
			s.index++
		}

		if s.index == len(s.line) {
			return s.tokens, nil
		}

		s.start = s.index
		ch := s.line[s.index]

		switch {
		case isAlpha(ch):
			if err := s.scanIdentifier(); err != nil {
				return nil, err
			}
		case ch == '"':
			if err := s.scanString(); err != nil {
				return nil, err
			}
		case ch == '-' || isDigit(ch):
			if err := s.scanNumber(); err != nil {
				return nil, err
			}
		case ch == ':':
			s.index++
			s.emit(token.COLON, nil)
		case ch == '.':
			s.index++
			s.emit(token.DOT, nil)
		case ch == '=':
			s.index++
			s.emit(token.EQUAL, nil)
		case ch == '<':
			s.index++
			if s.index < len(s.line) && s.line[s.index] == '>' {
				s.index++
				s.emit(token.NOT_EQUAL, nil)
			} else if s.index < len(s.line) && s.line[s.index] == '=' {
				s.index++
				s.emit(token.LESS_THAN_OR_EQUAL, nil)
			} else {
				s.emit(token.LESS_THAN, nil)
			}
		case ch == '>':
			s.index++
			if s.index < len(s.line) && s.line[s.index] == '=' {
				s.index++
				s.emit(token.GREATER_THAN_OR_EQUAL, nil)
			} else {
				s.emit(token.GREATER_THAN, nil)
			}
		default:
			return nil, s.errAt(s.index, "Invalid character")
		}
	}
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f' || ch == '\r' }
func isAlpha(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isAlnum(ch byte) bool { return isAlpha(ch) || isDigit(ch) }

// emit appends a token whose lexeme is line[s.start:s.index], located at the
// 1-indexed column of its first character.
func (s *scanner) emit(kind token.Kind, value any) {
	text := s.line[s.start:s.index]
	loc, _ := location.New(s.lineNumber, s.start+1)
	s.tokens = append(s.tokens, token.Token{Kind: kind, Text: text, Loc: loc, Value: value})
}

func (s *scanner) errAt(index int, message string) error {
	loc, _ := location.New(s.lineNumber, index+1)
	return &LexError{Message: message, Loc: loc}
}

func (s *scanner) scanIdentifier() error {
	for s.index < len(s.line) && isAlnum(s.line[s.index]) {
		s.index++
	}
	text := s.line[s.start:s.index]
	s.emit(token.KeywordLookup(text), text)
	return nil
}

func (s *scanner) scanString() error {
	s.index++ // opening quote
	for s.index < len(s.line) && s.line[s.index] != '"' {
		s.index++
	}
	if s.index == len(s.line) {
		return s.errAt(s.index, "Newline in string literal")
	}
	s.index++ // closing quote
	text := s.line[s.start:s.index]
	value := s.line[s.start+1 : s.index-1]
	s.tokens = append(s.tokens, token.Token{
		Kind: token.LITERAL_STRING, Text: text,
		Loc: mustLoc(s.lineNumber, s.start+1), Value: value,
	})
	return nil
}

func (s *scanner) scanNumber() error {
	isNegated := s.line[s.index] == '-'
	s.index++
	digits := 1
	if isNegated {
		digits = 0
	}

	for s.index < len(s.line) && isDigit(s.line[s.index]) {
		s.index++
		digits++
	}

	if isNegated && digits == 0 {
		return s.errAt(s.index, "Negation must be followed by at least one digit")
	}

	if s.index < len(s.line) && s.line[s.index] == '.' {
		s.index++
		for s.index < len(s.line) && isDigit(s.line[s.index]) {
			s.index++
		}
		text := s.line[s.start:s.index]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return s.errAt(s.start, "Invalid float literal")
		}
		s.emit(token.LITERAL_FLOAT, value)
		return nil
	}

	text := s.line[s.start:s.index]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return s.errAt(s.start, "Invalid integer literal")
	}
	s.emit(token.LITERAL_INTEGER, value)
	return nil
}

func mustLoc(line, col int) location.Location {
	loc, _ := location.New(line, col)
	return loc
}
