// Package token defines the lexical tokens of the Grin language: the set of
// token kinds, their categorization, and the Token value type itself.
package token

import "github.com/williamc15/Project3Final/internal/grin/location"

// Category groups related token kinds together.
type Category int

const (
	CategoryKeyword Category = iota
	CategoryComparisonOperator
	CategoryLiteral
	CategoryPunctuation
	CategoryIdentifier
)

// Kind identifies a kind of Grin token. Each kind has a stable unique tag.
type Kind int

const (
	ADD Kind = iota
	COLON
	DIV
	DOT
	END
	EQUAL
	GOSUB
	GOTO
	GREATER_THAN
	GREATER_THAN_OR_EQUAL
	IDENTIFIER
	IF
	INNUM
	INSTR
	LESS_THAN
	LESS_THAN_OR_EQUAL
	LET
	LITERAL_FLOAT
	LITERAL_INTEGER
	LITERAL_STRING
	MULT
	NOT_EQUAL
	PRINT
	RETURN
	SUB
)

var categories = map[Kind]Category{
	ADD:   CategoryKeyword,
	DIV:   CategoryKeyword,
	END:   CategoryKeyword,
	GOSUB: CategoryKeyword,
	GOTO:  CategoryKeyword,
	IF:    CategoryKeyword,
	INNUM: CategoryKeyword,
	INSTR: CategoryKeyword,
	LET:   CategoryKeyword,
	MULT:  CategoryKeyword,
	PRINT: CategoryKeyword,
	RETURN: CategoryKeyword,
	SUB:   CategoryKeyword,

	EQUAL:                 CategoryComparisonOperator,
	NOT_EQUAL:              CategoryComparisonOperator,
	LESS_THAN:              CategoryComparisonOperator,
	LESS_THAN_OR_EQUAL:     CategoryComparisonOperator,
	GREATER_THAN:           CategoryComparisonOperator,
	GREATER_THAN_OR_EQUAL:  CategoryComparisonOperator,

	LITERAL_INTEGER: CategoryLiteral,
	LITERAL_FLOAT:   CategoryLiteral,
	LITERAL_STRING:  CategoryLiteral,

	COLON: CategoryPunctuation,
	DOT:   CategoryPunctuation,

	IDENTIFIER: CategoryIdentifier,
}

// Category reports which category a kind belongs to.
func (k Kind) Category() Category {
	return categories[k]
}

var names = map[Kind]string{
	ADD: "ADD", COLON: "COLON", DIV: "DIV", DOT: "DOT", END: "END",
	EQUAL: "EQUAL", GOSUB: "GOSUB", GOTO: "GOTO",
	GREATER_THAN: "GREATER_THAN", GREATER_THAN_OR_EQUAL: "GREATER_THAN_OR_EQUAL",
	IDENTIFIER: "IDENTIFIER", IF: "IF", INNUM: "INNUM", INSTR: "INSTR",
	LESS_THAN: "LESS_THAN", LESS_THAN_OR_EQUAL: "LESS_THAN_OR_EQUAL",
	LET: "LET", LITERAL_FLOAT: "LITERAL_FLOAT", LITERAL_INTEGER: "LITERAL_INTEGER",
	LITERAL_STRING: "LITERAL_STRING", MULT: "MULT", NOT_EQUAL: "NOT_EQUAL",
	PRINT: "PRINT", RETURN: "RETURN", SUB: "SUB",
}

// String returns a human-readable name for the kind, used in parser error
// messages ("LITERAL_INTEGER, LITERAL_STRING, IDENTIFIER expected").
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps exact (case-sensitive) keyword spellings to their Kind.
var keywords = map[string]Kind{
	"ADD": ADD, "DIV": DIV, "END": END, "GOSUB": GOSUB, "GOTO": GOTO,
	"IF": IF, "INNUM": INNUM, "INSTR": INSTR, "LET": LET, "MULT": MULT,
	"PRINT": PRINT, "RETURN": RETURN, "SUB": SUB,
}

// Keywords is the set of exact keyword spellings recognized by the lexer.
var Keywords = func() map[string]struct{} {
	s := make(map[string]struct{}, len(keywords))
	for k := range keywords {
		s[k] = struct{}{}
	}
	return s
}()

// KeywordLookup returns the Kind for an exact (case-sensitive) keyword
// spelling, or IDENTIFIER if text does not name a keyword.
func KeywordLookup(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return IDENTIFIER
}

// Token is a single lexical token produced by the lexer.
type Token struct {
	Kind  Kind
	Text  string
	Loc   location.Location
	Value any
}
