// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import "strings"

// Key identifies an entry in a [Mapping]. A key is an optional namespace
// qualifier plus a required name; the textual form joins them with a slash.
//
// Keys compare by struct equality: both segments, case-sensitive, so
// Key{"a", "one"} and Key{"", "one"} address distinct entries.
type Key struct {
	Namespace string
	Name      string
}

// ParseKey splits the textual form of a key at the first slash.
// A leading slash does not qualify: "/x" is the bare name "/x".
//
//	ParseKey("a/one")  → Key{"a", "one"}
//	ParseKey("a/b/c")  → Key{"a", "b/c"}
//	ParseKey("one")    → Key{"", "one"}
//	ParseKey("a/")     → Key{"a", ""}
//
// ParseKey is total; every string yields a key.
func ParseKey(s string) Key {
	if i := strings.Index(s, "/"); i > 0 {
		return Key{Namespace: s[:i], Name: s[i+1:]}
	}
	return Key{Name: s}
}

// Name constructs an unqualified key.
func Name(name string) Key {
	return Key{Name: name}
}

// Qualified constructs a namespace-qualified key.
func Qualified(namespace, name string) Key {
	return Key{Namespace: namespace, Name: name}
}

// String returns the textual form: "namespace/name" when qualified,
// the bare name otherwise.
//
// A key is canonical when ParseKey(k.String()) == k. An unqualified key
// whose name contains a slash is not canonical: its textual form reparses
// as a qualified key, so it normalizes whenever it crosses the textual
// boundary (see [EncodeText]). Callers that need exact round-trips keep
// slashes out of unqualified names.
func (k Key) String() string {
	if k.Namespace == "" {
		return k.Name
	}
	return k.Namespace + "/" + k.Name
}

// IsQualified reports whether the key carries a namespace segment.
func (k Key) IsQualified() bool {
	return k.Namespace != ""
}

// compareKeys orders keys by namespace, then name.
func compareKeys(a, b Key) int {
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
