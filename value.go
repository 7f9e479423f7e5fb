// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import (
	"cmp"
	"math"
	"slices"
)

// Value is the closed variant of structured data handled by this package:
// [Mapping], [Sequence], [Set], [String], [Int], [Float], [Bool], and [Nil].
// The merge engine and the codec branch on this variant with type switches;
// no other implementations exist.
//
// A Go nil Value is accepted everywhere and treated as [Nil].
type Value interface {
	isValue()
}

// Mapping is an unordered association of [Key] to [Value].
type Mapping map[Key]Value

// Sequence is an ordered list of values. Order is part of its identity.
type Sequence []Value

// Set is a collection of unique values whose identity ignores element
// order. Uniqueness is by [Equal]; [NewSet] enforces it on construction.
type Set []Value

// String is a textual scalar.
type String string

// Int is an integral scalar. Int and [Float] are distinct kinds: they
// never compare equal, whatever their magnitudes.
type Int int64

// Float is a floating-point scalar.
type Float float64

// Bool is a boolean scalar.
type Bool bool

// Nil is the null scalar.
type Nil struct{}

func (Mapping) isValue()  {}
func (Sequence) isValue() {}
func (Set) isValue()      {}
func (String) isValue()   {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (Bool) isValue()     {}
func (Nil) isValue()      {}

// NewSet builds a [Set] from elems, dropping duplicates by [Equal].
// The first occurrence of each element is kept, in argument order.
func NewSet(elems ...Value) Set {
	s := make(Set, 0, len(elems))
	for _, e := range elems {
		if !s.Contains(e) {
			s = append(s, e)
		}
	}
	return s
}

// Contains reports whether the set holds an element [Equal] to v.
func (s Set) Contains(v Value) bool {
	for _, e := range s {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// Equal reports structural equality of two values.
//
// Kinds never cross: Int(1) and Float(1) are unequal. [Set] comparison is
// order-insensitive. Float NaN equals NaN here, since Equal is an
// identity relation rather than IEEE arithmetic. A Go nil Value equals
// [Nil].
func Equal(a, b Value) bool {
	a, b = normalize(a), normalize(b)
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(av)) {
			return math.IsNaN(float64(bv))
		}
		return av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Sequence:
		bv, ok := b.(Sequence)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Set:
		bv, ok := b.(Set)
		if !ok || len(av) != len(bv) {
			return false
		}
		used := make([]bool, len(bv))
	outer:
		for _, e := range av {
			for i, f := range bv {
				if !used[i] && Equal(e, f) {
					used[i] = true
					continue outer
				}
			}
			return false
		}
		return true
	case Mapping:
		bv, ok := b.(Mapping)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of the mapping. Nested mappings, sequences,
// and sets are copied; scalars are shared (they are immutable).
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v Value) Value {
	switch vv := v.(type) {
	case Mapping:
		return vv.Clone()
	case Sequence:
		out := make(Sequence, len(vv))
		for i, e := range vv {
			out[i] = cloneValue(e)
		}
		return out
	case Set:
		out := make(Set, len(vv))
		for i, e := range vv {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// normalize folds a Go nil Value into Nil.
func normalize(v Value) Value {
	if v == nil {
		return Nil{}
	}
	return v
}

// Kind ranks for the total order: scalars before composites.
const (
	rankNil = iota
	rankBool
	rankInt
	rankFloat
	rankString
	rankSequence
	rankSet
	rankMapping
)

func kindRank(v Value) int {
	switch v.(type) {
	case Nil:
		return rankNil
	case Bool:
		return rankBool
	case Int:
		return rankInt
	case Float:
		return rankFloat
	case String:
		return rankString
	case Sequence:
		return rankSequence
	case Set:
		return rankSet
	case Mapping:
		return rankMapping
	}
	return rankNil
}

// compareValues is a total order over the variant, used to canonicalize
// set elements and mapping keys in the textual form. Kinds order by rank;
// within a kind the payload orders recursively. compareValues(a, b) == 0
// exactly when Equal(a, b).
func compareValues(a, b Value) int {
	a, b = normalize(a), normalize(b)
	if c := cmp.Compare(kindRank(a), kindRank(b)); c != 0 {
		return c
	}
	switch av := a.(type) {
	case Nil:
		return 0
	case Bool:
		bv := b.(Bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case Int:
		return cmp.Compare(av, b.(Int))
	case Float:
		return cmp.Compare(av, b.(Float))
	case String:
		return cmp.Compare(av, b.(String))
	case Sequence:
		return compareElems(av, b.(Sequence))
	case Set:
		return compareElems(sortedElems(av), sortedElems(b.(Set)))
	case Mapping:
		return compareMappings(av, b.(Mapping))
	}
	return 0
}

func compareElems(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareValues(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// sortedElems returns the elements in compareValues order.
func sortedElems(s []Value) []Value {
	out := slices.Clone(s)
	slices.SortFunc(out, compareValues)
	return out
}

func compareMappings(a, b Mapping) int {
	ka, kb := sortedKeys(a), sortedKeys(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := compareKeys(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := compareValues(a[ka[i]], b[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

// sortedKeys returns the mapping's keys in compareKeys order.
func sortedKeys(m Mapping) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}
