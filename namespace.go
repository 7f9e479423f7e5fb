// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import "strings"

// Namespace transforms restructure flat mappings along the namespace
// segment of their keys. All of them are pure: the input mapping is never
// mutated, the result is freshly allocated, and no input can fault.

// StripNamespaces discards the namespace segment of every key.
// Two keys that differ only by namespace collide after stripping; one of
// them wins, chosen arbitrarily. Callers that cannot tolerate the
// ambiguity use [ExtractNamespace] or [GroupByNamespace] instead.
func StripNamespaces(m Mapping) Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[Key{Name: k.Name}] = v
	}
	return out
}

// ExcludeNamespace drops every entry whose key is qualified with the
// given namespace. Surviving entries keep their keys as they are.
func ExcludeNamespace(m Mapping, namespace string) Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		if k.Namespace != namespace {
			out[k] = v
		}
	}
	return out
}

// ExtractNamespace selects the entries qualified with the given namespace
// and returns them re-keyed to bare names, nested under a single outer
// key carrying the namespace. Entries under other namespaces are dropped.
// The inner mapping is present even when nothing matches:
//
//	ExtractNamespace({a/one: 1, b/one: 9}, "a") → {a: {one: 1}}
//	ExtractNamespace({b/one: 9}, "a")           → {a: {}}
func ExtractNamespace(m Mapping, namespace string) Mapping {
	inner := make(Mapping)
	for k, v := range m {
		if k.Namespace == namespace {
			inner[Key{Name: k.Name}] = v
		}
	}
	return Mapping{Key{Name: namespace}: inner}
}

// GroupByNamespace partitions a flat mapping by the namespace segment:
// each distinct namespace becomes one outer key holding a mapping of bare
// name to value. Unqualified entries group under the empty-named outer
// key, so the transform is total and loses nothing:
//
//	GroupByNamespace({a/one: 1, b/one: 9, two: 2})
//	    → {a: {one: 1}, b: {one: 9}, "": {two: 2}}
//
// [UngroupNamespaces] inverts it.
func GroupByNamespace(m Mapping) Mapping {
	out := make(Mapping)
	for k, v := range m {
		bucket := Key{Name: k.Namespace}
		inner, ok := out[bucket].(Mapping)
		if !ok {
			inner = make(Mapping)
			out[bucket] = inner
		}
		inner[Key{Name: k.Name}] = v
	}
	return out
}

// UngroupNamespaces flattens a grouped mapping back into qualified keys:
// for each outer entry holding a [Mapping], every inner entry becomes one
// flat entry qualified with the outer key's textual form (the empty-named
// bucket yields unqualified keys). Outer entries holding non-mapping
// values pass through unchanged.
//
// UngroupNamespaces(GroupByNamespace(m)) reproduces m exactly.
func UngroupNamespaces(m Mapping) Mapping {
	out := make(Mapping, len(m))
	for outer, v := range m {
		inner, ok := v.(Mapping)
		if !ok {
			out[outer] = v
			continue
		}
		ns := outer.String()
		for k, iv := range inner {
			out[Key{Namespace: ns, Name: k.String()}] = iv
		}
	}
	return out
}

// ReplaceInKeys rewrites every key's textual form, substituting all
// occurrences of from with to, and reparses the result. Values are
// untouched. Keys that collide after rewriting resolve arbitrarily, the
// same accepted ambiguity as [StripNamespaces]. An empty from returns an
// equal copy.
func ReplaceInKeys(m Mapping, from, to string) Mapping {
	out := make(Mapping, len(m))
	if from == "" {
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	for k, v := range m {
		out[ParseKey(strings.ReplaceAll(k.String(), from, to))] = v
	}
	return out
}
