// SPDX-License-Identifier: MIT

package series

import "strconv"

// Label is one scalar component of an index entry: either a number or a
// string. Labels are comparable values; a numeric label never equals a
// string label, even when they render identically.
type Label struct {
	num   float64
	str   string
	isStr bool
}

// Num returns a numeric label.
func Num(v float64) Label { return Label{num: v} }

// Str returns a string label.
func Str(s string) Label { return Label{str: s, isStr: true} }

// Nums converts a slice of numbers into labels, in order.
func Nums(vs ...float64) []Label {
	out := make([]Label, len(vs))
	for i, v := range vs {
		out[i] = Num(v)
	}

	return out
}

// Strs converts a slice of strings into labels, in order.
func Strs(ss ...string) []Label {
	out := make([]Label, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}

	return out
}

// IsNumeric reports whether the label holds a number.
func (l Label) IsNumeric() bool { return !l.isStr }

// Float returns the numeric value and whether the label is numeric.
func (l Label) Float() (float64, bool) { return l.num, !l.isStr }

// String renders the label for display and for canonical group keys.
func (l Label) String() string {
	if l.isStr {
		return l.str
	}

	return strconv.FormatFloat(l.num, 'g', -1, 64)
}
