// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package remap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Canonical textual form of the value model, carried by YAML.
//
// Encoding is deterministic: mapping entries order by key, set elements
// by the model's total order, scalars carry resolved tags so nothing
// shifts kind on the way back in. Decoding accepts any well-formed YAML
// document, not only canonical output.

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
	tagSeq   = "!!seq"
	tagMap   = "!!map"
	tagSet   = "!!set"
)

// EncodeText renders a value to its canonical textual form. Two [Equal]
// values encode to identical bytes. Fails with [ErrParse] when the value
// has no textual form (a [String] holding invalid UTF-8).
func EncodeText(v Value) ([]byte, error) {
	data, err := yaml.Marshal(encodeNode(normalize(v)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return data, nil
}

// DecodeText parses structured text back into a [Value]. Resolved scalars
// become their model kinds, !!set mappings become [Set], other mappings
// become [Mapping] with keys read by [ParseKey]. Scalars with foreign
// tags (!!timestamp, application tags) fold to [String] of their literal
// text. An empty document decodes to [Nil].
//
// Fails with [ErrParse] on malformed text, on mapping keys that are not
// scalars, and on numeric scalars outside the model's range.
func DecodeText(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind == 0 {
		return Nil{}, nil
	}
	var d textDecoder
	return d.decode(&doc)
}

func encodeNode(v Value) *yaml.Node {
	switch vv := v.(type) {
	case Nil:
		return scalarNode(tagNull, "null")
	case Bool:
		return scalarNode(tagBool, strconv.FormatBool(bool(vv)))
	case Int:
		return scalarNode(tagInt, strconv.FormatInt(int64(vv), 10))
	case Float:
		return scalarNode(tagFloat, formatFloat(float64(vv)))
	case String:
		return scalarNode(tagStr, string(vv))
	case Sequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq}
		n.Content = make([]*yaml.Node, 0, len(vv))
		for _, e := range vv {
			n.Content = append(n.Content, encodeNode(normalize(e)))
		}
		return n
	case Set:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: tagSet}
		n.Content = make([]*yaml.Node, 0, 2*len(vv))
		for _, e := range sortedElems(vv) {
			n.Content = append(n.Content, encodeNode(normalize(e)), scalarNode(tagNull, "null"))
		}
		return n
	case Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
		n.Content = make([]*yaml.Node, 0, 2*len(vv))
		for _, k := range sortedKeys(vv) {
			n.Content = append(n.Content, scalarNode(tagStr, k.String()), encodeNode(normalize(vv[k])))
		}
		return n
	}
	return scalarNode(tagNull, "null")
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// formatFloat is the canonical float rendering: shortest round-trip form,
// forced to re-resolve as a float rather than an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// textDecoder tracks anchored nodes on the decode path so aliased
// documents that contain themselves fail instead of recursing forever.
type textDecoder struct {
	busy map[*yaml.Node]bool
}

func (d *textDecoder) decode(n *yaml.Node) (Value, error) {
	if n.Anchor != "" {
		if d.busy[n] {
			return nil, fmt.Errorf("%w: anchor %q contains itself", ErrParse, n.Anchor)
		}
		if d.busy == nil {
			d.busy = make(map[*yaml.Node]bool)
		}
		d.busy[n] = true
		defer delete(d.busy, n)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Nil{}, nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		return d.decode(n.Alias)
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.SequenceNode:
		out := make(Sequence, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		if n.ShortTag() == tagSet {
			return d.decodeSet(n)
		}
		return d.decodeMapping(n)
	}
	return nil, fmt.Errorf("%w: unsupported node kind %d", ErrParse, n.Kind)
}

func decodeScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case tagNull:
		return Nil{}, nil
	case tagBool:
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: boolean %q", ErrParse, n.Value)
		}
		return Bool(b), nil
	case tagInt:
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %q", ErrParse, n.Value)
		}
		return Int(i), nil
	case tagFloat:
		f, err := parseFloat(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: float %q", ErrParse, n.Value)
		}
		return Float(f), nil
	case tagStr:
		return String(n.Value), nil
	default:
		return String(n.Value), nil
	}
}

func parseFloat(s string) (float64, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "+")) {
	case ".inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func (d *textDecoder) decodeMapping(n *yaml.Node) (Value, error) {
	out := make(Mapping, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn := n.Content[i]
		if kn.Kind == yaml.AliasNode {
			kn = kn.Alias
		}
		if kn.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: mapping key is not a scalar", ErrParse)
		}
		v, err := d.decode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		out[ParseKey(kn.Value)] = v
	}
	return out, nil
}

// decodeSet reads a !!set mapping. Elements are the keys; the null
// values are ignored. Unlike [Mapping] keys, set elements may be any
// value kind.
func (d *textDecoder) decodeSet(n *yaml.Node) (Value, error) {
	elems := make([]Value, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		v, err := d.decode(n.Content[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return NewSet(elems...), nil
}
