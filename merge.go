// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

// Deep merge over nested mappings.
//
// The essential contract is merge versus replace: at a shared key, nested
// mappings merge recursively, anything else resolves through the caller's
// combiner. A mapping meeting a scalar is a non-mapping conflict; the
// combiner decides it, nothing is dropped silently.

// Combiner resolves a conflict at a key present in more than one input.
// It receives every present value in input order and returns the value
// the merged mapping keeps. A combiner fault propagates to the caller of
// [DeepMerge] untouched; the engine recovers nothing.
type Combiner func(values ...Value) Value

// LastWins keeps the rightmost value. It is the default conflict policy.
var LastWins Combiner = func(values ...Value) Value {
	return values[len(values)-1]
}

// DeepMerge combines mappings depth-first. For each key in the union of
// the inputs:
//
//   - present in exactly one input → the value passes through untouched;
//     the combiner never sees it.
//   - present in several, every value a [Mapping] → the mappings merge
//     recursively with the same combiner.
//   - otherwise → combine is applied to the present values in input
//     order, whatever mix of kinds they are.
//
// A nil combine means [LastWins]. Result mappings are freshly allocated
// at every level the merge touches; subtrees taken from a single input
// are shared with it. Callers needing isolation use [Mapping.Clone].
func DeepMerge(combine Combiner, maps ...Mapping) Mapping {
	if combine == nil {
		combine = LastWins
	}
	out := make(Mapping)
	for _, m := range maps {
		for k := range m {
			if _, seen := out[k]; seen {
				continue
			}
			out[k] = mergeKey(combine, k, maps)
		}
	}
	return out
}

// MergeMaps merges with the default policy: later inputs override earlier
// ones at the leaf level, nested mappings merge rather than replace.
func MergeMaps(maps ...Mapping) Mapping {
	return DeepMerge(LastWins, maps...)
}

// mergeKey resolves one key of the union across all inputs.
func mergeKey(combine Combiner, k Key, maps []Mapping) Value {
	vals := make([]Value, 0, len(maps))
	for _, m := range maps {
		if v, ok := m[k]; ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 1 {
		return vals[0]
	}
	subs := make([]Mapping, 0, len(vals))
	for _, v := range vals {
		mv, ok := v.(Mapping)
		if !ok {
			return combine(vals...)
		}
		subs = append(subs, mv)
	}
	return DeepMerge(combine, subs...)
}
