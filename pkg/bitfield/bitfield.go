// Package bitfield treats an integer as a fixed-size set of flags indexed by
// bit position. Positions are not range-checked; a position at or beyond
// the width of the field type gives an unspecified result.
package bitfield

import "golang.org/x/exp/constraints"

// SetOn returns field with the given bit set.
func SetOn[T, B constraints.Integer](field T, bit B) T {
	return field | T(1)<<bit
}

// SetOff returns field with the given bit cleared.
func SetOff[T, B constraints.Integer](field T, bit B) T {
	return field &^ (T(1) << bit)
}

// Contains reports whether the given bit is set in field.
func Contains[T, B constraints.Integer](field T, bit B) bool {
	return field&(T(1)<<bit) != 0
}

// CountOn returns the number of set bits in field.
// Each iteration clears the lowest set bit, so the loop runs once per set bit.
func CountOn[T constraints.Integer](field T) int {
	count := 0
	for n := field; n != 0; n &= n - 1 {
		count++
	}
	return count
}
