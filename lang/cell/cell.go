// Package cell implements the signed integer cell value that Funge-space is
// built from: the single scalar type that doubles as character, boolean,
// and machine-word arithmetic for a running program.
package cell

import "math"

// Value is a Funge cell: a signed integer of implementation-defined width.
// This implementation uses 64 bits (Bits); the 'y' sysinfo instruction
// reports that width to programs in bytes.
//
// Go's native int64 arithmetic already wraps on overflow (the language
// spec guarantees two's-complement wraparound for signed operations), so
// Value needs no custom Add/Sub/Mul: plain operators are correct and fast.
type Value int64

// Bits is the width of a Value in bits; sysinfo field 2 reports it in
// bytes (Bits/8).
const Bits = 64

// Blank is the cell value of the space character, the blank that Funge-space
// reads back for any cell never written (or last written blank).
const Blank Value = ' '

// Bool converts a Go bool to the canonical Funge truth values: 1 for true, 0
// for false.
func Bool(b bool) Value {
	if b {
		return 1
	}
	return 0
}

// Truthy reports whether v is Funge-truthy (nonzero).
func (v Value) Truthy() bool { return v != 0 }

// Rune truncates v to a valid Unicode scalar value for use as a character.
// Values outside the valid scalar range are clamped to the replacement
// character, mirroring the "conversion to/from a Unicode scalar value (via
// truncation)" contract in the data model.
func (v Value) Rune() rune {
	if v < 0 || v > math.MaxInt32 || !validRune(rune(v)) {
		return 0xFFFD
	}
	return rune(v)
}

func validRune(r rune) bool {
	return r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}

// FromRune converts a Unicode scalar value to a cell.
func FromRune(r rune) Value { return Value(r) }

// Byte truncates v to its low 8 bits, for binary-mode character I/O.
func (v Value) Byte() byte { return byte(v & 0xff) }

// DivTrunc implements Funge's '/' operator: truncated-toward-zero division,
// with division by zero defined to yield 0 rather than panicking.
func DivTrunc(a, b Value) Value {
	if b == 0 {
		return 0
	}
	return a / b
}

// ModTrunc implements Funge's '%' operator: truncated-toward-zero remainder,
// with modulo by zero defined to yield 0.
func ModTrunc(a, b Value) Value {
	if b == 0 {
		return 0
	}
	return a % b
}

// DivEuclid performs Euclidean division: the remainder is always in
// [0, |b|), regardless of sign. Used exclusively for index-to-page
// decomposition in Funge-space, never for the built-in '/' operator.
func DivEuclid(a, b Value) Value {
	q := a / b
	if r := a % b; r < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// ModEuclid performs Euclidean remainder: always in [0, |b|).
func ModEuclid(a, b Value) Value {
	r := a % b
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	return r
}
