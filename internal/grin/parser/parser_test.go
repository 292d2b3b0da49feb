package parser

import "testing"

func TestParseAcceptsEachStatementForm(t *testing.T) {
	cases := []string{
		`LET X 5`,
		`LET X 3.14`,
		`LET X "Boo"`,
		`ADD X 1`,
		`SUB X 1`,
		`MULT X 2`,
		`DIV X 2`,
		`PRINT X`,
		`PRINT "Boo"`,
		`INNUM X`,
		`INSTR X`,
		`GOTO 2`,
		`GOTO "LOOP"`,
		`GOTO X`,
		`GOSUB "SUB"`,
		`GOTO 2 IF X < 5`,
		`GOTO 2 IF X = "Boo"`,
		`RETURN`,
		`END`,
		`LOOP: PRINT X`,
	}
	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			if _, err := Parse([]string{line, Sentinel}); err != nil {
				t.Errorf("Parse(%q) returned unexpected error: %v", line, err)
			}
		})
	}
}

func TestParseStopsAtSentinel(t *testing.T) {
	tokensPerLine, err := Parse([]string{`LET X 1`, Sentinel, `PRINT X`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokensPerLine) != 1 {
		t.Fatalf("got %d lines, want 1 (everything after the sentinel must be dropped)", len(tokensPerLine))
	}
}

func TestParseRejectsEmptyLine(t *testing.T) {
	_, err := Parse([]string{``, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for an empty line")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if perr.Loc.Column() != 1 {
		t.Errorf("error column = %d, want 1", perr.Loc.Column())
	}
}

func TestParseRejectsExtraTokensAfterStatement(t *testing.T) {
	_, err := Parse([]string{`LET X 3 "Boo"`, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for trailing tokens")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if perr.Loc.Column() != 9 {
		t.Errorf("error column = %d, want 9", perr.Loc.Column())
	}
}

func TestParseRejectsLabelWithNoStatementBody(t *testing.T) {
	_, err := Parse([]string{`LABEL:`, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for a label with no statement")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if perr.Loc.Column() != 7 {
		t.Errorf("error column = %d, want 7", perr.Loc.Column())
	}
}

func TestParseRejectsLineWithoutAStatementKeyword(t *testing.T) {
	_, err := Parse([]string{`4 < 5`, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for a line that is not a statement")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *ParseError", err)
	}
	if perr.Loc.Column() != 1 {
		t.Errorf("error column = %d, want 1", perr.Loc.Column())
	}
}

func TestParseRejectsUnknownStatementKeyword(t *testing.T) {
	_, err := Parse([]string{`BOO X`, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for an unrecognized identifier used as a statement")
	}
}

func TestParseRejectsMissingJumpTarget(t *testing.T) {
	_, err := Parse([]string{`GOTO`, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for GOTO with no target")
	}
}

func TestParseRejectsIncompleteIfClause(t *testing.T) {
	_, err := Parse([]string{`GOTO 2 IF X <`, Sentinel})
	if err == nil {
		t.Fatal("expected a parse error for an incomplete IF clause")
	}
}

func TestParseLabelsDoNotRequireAColonPrefixedStatement(t *testing.T) {
	tokensPerLine, err := Parse([]string{`START: LET X 0`, Sentinel})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokensPerLine[0]) != 5 {
		t.Fatalf("got %d tokens, want 5 (label, colon, LET, X, 0)", len(tokensPerLine[0]))
	}
}

func TestParsePropagatesLexErrors(t *testing.T) {
	_, err := Parse([]string{`LET X "abc`, Sentinel})
	if err == nil {
		t.Fatal("expected a lex error to propagate out of Parse")
	}
	if _, ok := err.(*ParseError); ok {
		t.Fatal("expected a *lexer.LexError, not a *ParseError")
	}
}
