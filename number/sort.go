// SPDX-License-Identifier: MIT
// Package number: ordered-container helpers over []Value.
//
// All helpers use the total order (Compare): numbers ascending, NotANumber last.
// Sorting is stable, so Values that compare Equal but differ in width or in
// the sign of zero keep their input order.

package number

import "golang.org/x/exp/slices"

// Sort sorts vs in place by the total order.
func Sort(vs []Value) {
	slices.SortStableFunc(vs, Compare)
}

// IsSorted reports whether vs is sorted by the total order.
func IsSorted(vs []Value) bool {
	return slices.IsSortedFunc(vs, Compare)
}

// Search binary-searches a sorted vs for target. It returns the position
// where target is or would be inserted, and whether an element comparing
// Equal was found. Searching for NotANumber finds the first sentinel.
func Search(vs []Value, target Value) (int, bool) {
	return slices.BinarySearchFunc(vs, target, Compare)
}

// Min returns the least Value of vs by the total order; ok is false when vs
// is empty. NotANumber is returned only if every element is NotANumber.
func Min(vs []Value) (v Value, ok bool) {
	if len(vs) == 0 {
		return Value{}, false
	}

	return slices.MinFunc(vs, Compare), true
}

// Max returns the greatest Value of vs by the total order; ok is false when
// vs is empty. Any NotANumber element wins.
func Max(vs []Value) (v Value, ok bool) {
	if len(vs) == 0 {
		return Value{}, false
	}

	return slices.MaxFunc(vs, Compare), true
}
