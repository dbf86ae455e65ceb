// Package linalg is the groundwork for a pure-Go linear-algebra library,
// starting from its scalar.
//
// 🚀 What is in here?
//
//	number/ — Value, a 64-bit or 32-bit float in which "not a number" is an
//	          explicit, comparable, sortable state; cross-type equality and
//	          ordering against native floats and integers; checked int64
//	          conversion that refuses magnitudes beyond 2^53-1.
//
// ✨ Why?
//
//   - NaN never poisons a sort or a map again: it ranks last and has one key
//   - No silent precision loss: large integers are refused, not rounded
//   - Pure Go – no cgo, deterministic, immutable values
//
// Vectors, matrices and decompositions built on number.Value come next.
//
//	go get github.com/katalvlaran/linalg/number
package linalg
