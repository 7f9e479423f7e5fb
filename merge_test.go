// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap_test

import (
	"testing"

	"code.hybscloud.com/remap"
)

func TestMergeSingleKeyPassesThrough(t *testing.T) {
	a := remap.Mapping{remap.Name("only"): remap.Int(1)}
	b := remap.Mapping{remap.Name("other"): remap.Int(2)}
	combiner := func(values ...remap.Value) remap.Value {
		t.Fatal("combiner must not see keys present in one input")
		return nil
	}
	out := remap.DeepMerge(combiner, a, b)
	mustEqual(t, out, remap.Mapping{
		remap.Name("only"):  remap.Int(1),
		remap.Name("other"): remap.Int(2),
	})
}

func TestMergeNestedMappings(t *testing.T) {
	a := remap.Mapping{remap.Name("a"): remap.Mapping{remap.Name("b"): remap.Int(1)}}
	b := remap.Mapping{remap.Name("a"): remap.Mapping{remap.Name("c"): remap.Int(2)}}
	out := remap.DeepMerge(nil, a, b)
	mustEqual(t, out, remap.Mapping{
		remap.Name("a"): remap.Mapping{
			remap.Name("b"): remap.Int(1),
			remap.Name("c"): remap.Int(2),
		},
	})
}

func TestMergeMapsLastWins(t *testing.T) {
	out := remap.MergeMaps(
		remap.Mapping{remap.Name("x"): remap.Int(1)},
		remap.Mapping{remap.Name("x"): remap.Int(2)},
	)
	mustEqual(t, out, remap.Mapping{remap.Name("x"): remap.Int(2)})
}

func TestMergeMapsDeepPrecedence(t *testing.T) {
	base := remap.Mapping{
		remap.Name("db"): remap.Mapping{
			remap.Name("host"): remap.String("localhost"),
			remap.Name("port"): remap.Int(5432),
		},
	}
	override := remap.Mapping{
		remap.Name("db"): remap.Mapping{
			remap.Name("host"): remap.String("db.internal"),
		},
	}
	out := remap.MergeMaps(base, override)
	mustEqual(t, out, remap.Mapping{
		remap.Name("db"): remap.Mapping{
			remap.Name("host"): remap.String("db.internal"),
			remap.Name("port"): remap.Int(5432),
		},
	})
}

// A mapping meeting a scalar is a non-mapping conflict: the combiner
// resolves it directly, in both orientations, and nothing merges.
func TestMergeMixedKindConflict(t *testing.T) {
	m := remap.Mapping{remap.Name("k"): remap.Mapping{remap.Name("x"): remap.Int(1)}}
	s := remap.Mapping{remap.Name("k"): remap.Int(7)}

	out := remap.MergeMaps(m, s)
	mustEqual(t, out, remap.Mapping{remap.Name("k"): remap.Int(7)})

	out = remap.MergeMaps(s, m)
	mustEqual(t, out, remap.Mapping{
		remap.Name("k"): remap.Mapping{remap.Name("x"): remap.Int(1)},
	})
}

func TestMergeCombinerSeesInputOrder(t *testing.T) {
	var seen []remap.Value
	combiner := func(values ...remap.Value) remap.Value {
		seen = append(seen, values...)
		return values[0]
	}
	remap.DeepMerge(combiner,
		remap.Mapping{remap.Name("x"): remap.Int(1)},
		remap.Mapping{remap.Name("x"): remap.Int(2)},
		remap.Mapping{remap.Name("x"): remap.Int(3)},
	)
	mustEqual(t, remap.Sequence(seen), remap.Sequence{remap.Int(1), remap.Int(2), remap.Int(3)})
}

func TestMergeCombinerSkipsAbsentInputs(t *testing.T) {
	var got int
	combiner := func(values ...remap.Value) remap.Value {
		got = len(values)
		return values[len(values)-1]
	}
	remap.DeepMerge(combiner,
		remap.Mapping{remap.Name("x"): remap.Int(1)},
		remap.Mapping{remap.Name("y"): remap.Int(9)},
		remap.Mapping{remap.Name("x"): remap.Int(2)},
	)
	if got != 2 {
		t.Fatalf("combiner saw %d values, want 2", got)
	}
}

func TestMergeCustomCombiner(t *testing.T) {
	sum := func(values ...remap.Value) remap.Value {
		var total remap.Int
		for _, v := range values {
			total += v.(remap.Int)
		}
		return total
	}
	out := remap.DeepMerge(sum,
		remap.Mapping{remap.Name("n"): remap.Mapping{remap.Name("x"): remap.Int(1)}},
		remap.Mapping{remap.Name("n"): remap.Mapping{remap.Name("x"): remap.Int(2)}},
	)
	mustEqual(t, out, remap.Mapping{
		remap.Name("n"): remap.Mapping{remap.Name("x"): remap.Int(3)},
	})
}

func TestMergeCombinerFaultPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("combiner fault must propagate to the caller")
		}
	}()
	remap.DeepMerge(
		func(values ...remap.Value) remap.Value { panic("combiner fault") },
		remap.Mapping{remap.Name("x"): remap.Int(1)},
		remap.Mapping{remap.Name("x"): remap.Int(2)},
	)
}

func TestMergeNoInputs(t *testing.T) {
	out := remap.MergeMaps()
	if len(out) != 0 {
		t.Fatalf("got %d entries, want 0", len(out))
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := remap.Mapping{remap.Name("a"): remap.Mapping{remap.Name("b"): remap.Int(1)}}
	b := remap.Mapping{remap.Name("a"): remap.Mapping{remap.Name("c"): remap.Int(2)}}
	snapA, snapB := a.Clone(), b.Clone()
	out := remap.MergeMaps(a, b)
	out[remap.Name("a")].(remap.Mapping)[remap.Name("b")] = remap.Int(99)
	mustEqual(t, a, snapA)
	mustEqual(t, b, snapB)
}
