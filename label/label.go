// Package label implements the Label Table: an append-only, deduplicating
// store of string/numeric labels keyed by a stable integer index.
//
// A Label is a tagged value — either a string or a finite-precision real —
// compared by value, never by reference. String equality is byte-for-byte;
// numeric equality is IEEE-754 equality. Labels do not support ordering.
//
// Lookup is a linear scan over the table's slice. This is a deliberate,
// documented tradeoff: label sets are small per corpus (per the format's own
// reasoning), so a slice scan outperforms the bookkeeping of a hash map
// rebuilt on every Compress, and keeps the table's iteration order — which
// Compress relies on for a deterministic rewritten index space — trivial to
// reason about.
package label

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIndexOutOfRange indicates an index does not name a stored label.
var ErrIndexOutOfRange = errors.New("label: index out of range")

// Kind tags which union member of a Label is meaningful.
type Kind uint8

const (
	// KindString marks a Label whose value lives in Str.
	KindString Kind = iota
	// KindNumeric marks a Label whose value lives in Num.
	KindNumeric
)

// Label is a tagged string-or-numeric value. The zero Label is the string
// label "" — callers that need "no label" should use an explicit sentinel
// label in their own domain rather than relying on the zero value.
type Label struct {
	Kind Kind
	Str  string
	Num  float64

	// Label carries no "used" scratch mark: it is a value type copied
	// freely, so a caller that needs one keeps its own []bool indexed by
	// label index (the form Table.Compress takes its referenced mask in).
	// Kept here only as documentation of the field's absence.
}

// String builds a string-kind Label.
func String(s string) Label { return Label{Kind: KindString, Str: s} }

// Numeric builds a numeric-kind Label.
func Numeric(n float64) Label { return Label{Kind: KindNumeric, Num: n} }

// Equal reports whether two labels carry the same value, comparing by kind
// then by the corresponding union member. Byte-for-byte for strings,
// IEEE-754 equality for numerics (so NaN != NaN, matching float64 semantics).
func (l Label) Equal(o Label) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case KindString:
		return l.Str == o.Str
	case KindNumeric:
		return l.Num == o.Num
	default:
		return false
	}
}

// Text renders the label the way the wire format expects it:
// a bare token for strings without embedded whitespace, a double-quoted
// token otherwise, and Go's shortest round-tripping decimal for numerics.
func (l Label) Text() string {
	switch l.Kind {
	case KindNumeric:
		return strconv.FormatFloat(l.Num, 'g', -1, 64)
	default:
		if needsQuoting(l.Str) {
			return strconv.Quote(l.Str)
		}
		return l.Str
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '"' {
			return true
		}
	}
	return false
}

func (l Label) String() string {
	return fmt.Sprintf("Label(%s)", l.Text())
}
