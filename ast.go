// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"strconv"
	"strings"
)

// Path is either a SimplePath (an ordered list of Segments) or a UnionPath
// (an unordered list of SimplePaths whose results are concatenated in
// listed order).
type Path struct {
	// Simple holds the segment chain for a simple path. Empty when Union is
	// non-empty.
	Simple []Segment
	// Union holds alternative simple paths for a top-level union produced by
	// the normalizer. When non-empty, Simple is ignored.
	Union [][]Segment
}

// IsUnion reports whether p is a union of simple paths.
func (p Path) IsUnion() bool { return len(p.Union) > 0 }

// SegmentKind identifies a Segment variant.
type SegmentKind int

const (
	SegRoot SegmentKind = iota
	SegCurrent
	SegChild
	SegRecursive
	SegFilter
	SegScript
	SegParent
	SegPropertyName
	SegTypeSelector
)

// Segment is one step of a simple path.
type Segment struct {
	Kind SegmentKind

	// Selector is populated for SegChild and, optionally, SegRecursive
	// (the inner selector to apply to each descendant; nil means "every
	// descendant").
	Selector *Selector

	// FilterExpr is the verbatim source text of a SegFilter's predicate, or
	// a SegScript's expression, captured unparsed until the filter/script
	// engine needs it.
	FilterExpr string

	// TypeName names the JSON type kept by a SegTypeSelector.
	TypeName string
}

// SelectorKind identifies a Selector variant.
type SelectorKind int

const (
	SelIdentifier SelectorKind = iota
	SelIndex
	SelSlice
	SelWildcard
	SelUnion
)

// Selector is one selector applied by a Child or Recursive segment.
type Selector struct {
	Kind SelectorKind

	// Identifier fields.
	Name    string
	Quoted  bool
	Escaped bool

	// Index field.
	Index int

	// Slice fields. nil means "not specified" (defaulted at evaluation
	// time).
	Start *int
	End   *int
	Step  *int

	// Union holds the ordered list of item selectors for SelUnion. Items are
	// themselves SelIdentifier, SelIndex, SelSlice, or SelWildcard.
	Items []Selector
}

// writeTo renders the selector in normalized bracket form, used by the
// segmentsString debugging renderer.
func (s Selector) writeTo(buf *strings.Builder) {
	switch s.Kind {
	case SelIdentifier:
		writeQuotedKey(buf, s.Name)
	case SelIndex:
		buf.WriteString(strconv.Itoa(s.Index))
	case SelWildcard:
		buf.WriteByte('*')
	case SelSlice:
		if s.Start != nil {
			buf.WriteString(strconv.Itoa(*s.Start))
		}
		buf.WriteByte(':')
		if s.End != nil {
			buf.WriteString(strconv.Itoa(*s.End))
		}
		if s.Step != nil {
			buf.WriteByte(':')
			buf.WriteString(strconv.Itoa(*s.Step))
		}
	case SelUnion:
		for i, item := range s.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			item.writeTo(buf)
		}
	}
}

// writeQuotedKey writes key as a single-quoted normalized-path member name
// per RFC 9535 §2.7, escaping \ and '.
func writeQuotedKey(buf *strings.Builder, key string) {
	buf.WriteByte('\'')
	for _, r := range key {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '\'':
			buf.WriteString(`\'`)
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('\'')
}

// segmentsString renders a single simple path in normalized bracket notation,
// e.g. $['a'][0]. Segments with no normalized-path representation (Filter,
// Script, Parent, PropertyName, TypeSelector) are rendered with a
// best-effort marker since they are only used for debugging/Stringer
// purposes, never for the tracked-path output computed during evaluation
// (which runs over a concrete Context, not the AST).
func segmentsString(segs []Segment) string {
	var buf strings.Builder
	buf.WriteByte('$')
	for _, seg := range segs[minInt(1, len(segs)):] {
		switch seg.Kind {
		case SegChild:
			buf.WriteByte('[')
			seg.Selector.writeTo(&buf)
			buf.WriteByte(']')
		case SegRecursive:
			buf.WriteString("..")
			if seg.Selector != nil {
				buf.WriteByte('[')
				seg.Selector.writeTo(&buf)
				buf.WriteByte(']')
			}
		case SegFilter:
			buf.WriteString("[?")
			buf.WriteString(seg.FilterExpr)
			buf.WriteByte(']')
		case SegScript:
			buf.WriteString("[(")
			buf.WriteString(seg.FilterExpr)
			buf.WriteString(")]")
		case SegParent:
			buf.WriteString("^")
		case SegPropertyName:
			buf.WriteString("~")
		case SegTypeSelector:
			buf.WriteString("@")
			buf.WriteString(seg.TypeName)
			buf.WriteString("()")
		}
	}
	return buf.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
