package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags the runtime type of a Value.
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindFloat
	KindString
)

// Value is a Grin runtime value: an untyped tagged sum of Integer, Float, or
// String. Variables may be rebound to any Value regardless of their
// previous kind.
type Value struct {
	Kind ValueKind
	Int  int64
	Flt  float64
	Str  string
}

// Integer builds an Integer value.
func Integer(v int64) Value { return Value{Kind: KindInteger, Int: v} }

// Float builds a Float value.
func Float(v float64) Value { return Value{Kind: KindFloat, Flt: v} }

// String builds a String value.
func String(v string) Value { return Value{Kind: KindString, Str: v} }

// IsNumeric reports whether v is an Integer or a Float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInteger || v.Kind == KindFloat
}

// AsFloat returns v's numeric value promoted to float64. Only valid when
// IsNumeric is true.
func (v Value) AsFloat() float64 {
	if v.Kind == KindInteger {
		return float64(v.Int)
	}
	return v.Flt
}

// TypeName names v's runtime type for error messages.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	default:
		return "Unknown"
	}
}

// Render produces the textual form PRINT writes: decimal integer, a float
// with at least one fractional digit (trailing zeros kept), or the raw
// string characters.
func (v Value) Render() string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return formatFloat(v.Flt)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// formatFloat renders f with a decimal point and at least one fractional
// digit, e.g. 7 -> "7.0", 3.14 -> "3.14".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
