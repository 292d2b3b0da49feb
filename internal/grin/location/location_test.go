package location

import "testing"

func TestNewRejectsNonPositiveLine(t *testing.T) {
	if _, err := New(0, 1); err == nil {
		t.Fatal("expected error for line 0")
	}
	if _, err := New(-1, 1); err == nil {
		t.Fatal("expected error for negative line")
	}
}

func TestNewRejectsNonPositiveColumn(t *testing.T) {
	if _, err := New(1, 0); err == nil {
		t.Fatal("expected error for column 0")
	}
}

func TestNewAccepts(t *testing.T) {
	loc, err := New(3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Line() != 3 || loc.Column() != 7 {
		t.Fatalf("got Line=%d Column=%d, want Line=3 Column=7", loc.Line(), loc.Column())
	}
}

func TestString(t *testing.T) {
	loc, _ := New(2, 5)
	if got, want := loc.String(), "Line 2 Column 5"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEquality(t *testing.T) {
	a, _ := New(1, 1)
	b, _ := New(1, 1)
	c, _ := New(1, 2)
	if a != b {
		t.Fatal("expected equal locations to compare equal")
	}
	if a == c {
		t.Fatal("expected different locations to compare unequal")
	}
}
